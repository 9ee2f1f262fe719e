package activity

import (
	"context"

	"sf-recruiter/internal/core/domain"
)

type mockStore struct {
	snapshot  map[string]int
	blacklist []string

	getSnapshotErr error
	saved          []domain.PlayerInfo
	saveCalled     bool
	added          []string
}

func (m *mockStore) GetSnapshot(ctx context.Context) (map[string]int, error) {
	if m.getSnapshotErr != nil {
		return nil, m.getSnapshotErr
	}
	return m.snapshot, nil
}

func (m *mockStore) SaveSnapshot(ctx context.Context, players []domain.PlayerInfo) error {
	m.saveCalled = true
	m.saved = players
	return nil
}

func (m *mockStore) GetBlacklist(ctx context.Context) ([]string, error) {
	return m.blacklist, nil
}

func (m *mockStore) AddToBlacklist(ctx context.Context, name string) error {
	m.added = append(m.added, name)
	return nil
}

func (m *mockStore) Close() {}
