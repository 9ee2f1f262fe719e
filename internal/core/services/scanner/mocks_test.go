package scanner

import (
	"context"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
)

type mockSession struct {
	character string
	sendFunc  func(ctx context.Context, cmd ports.Command) (*domain.GameState, error)

	commands []ports.Command
}

func (m *mockSession) Character() string {
	return m.character
}

func (m *mockSession) Send(ctx context.Context, cmd ports.Command) (*domain.GameState, error) {
	m.commands = append(m.commands, cmd)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, cmd)
	}
	return &domain.GameState{}, nil
}

// pagedSession serves a fixed sequence of pages; a nil entry produces an
// error for that page index.
func pagedSession(pages [][]domain.Player, pageErr error) *mockSession {
	return &mockSession{
		sendFunc: func(ctx context.Context, cmd ports.Command) (*domain.GameState, error) {
			req, ok := cmd.(ports.HallOfFamePage)
			if !ok {
				return &domain.GameState{}, nil
			}
			if req.Page >= len(pages) {
				return &domain.GameState{}, nil
			}
			if pages[req.Page] == nil {
				return nil, pageErr
			}
			return &domain.GameState{HallOfFame: pages[req.Page]}, nil
		},
	}
}
