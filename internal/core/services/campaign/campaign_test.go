package campaign

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
)

type mockSession struct {
	sendFunc func(ctx context.Context, cmd ports.Command) (*domain.GameState, error)
	sent     []ports.SendMessage
}

func (m *mockSession) Character() string { return "Grimbold" }

func (m *mockSession) Send(ctx context.Context, cmd ports.Command) (*domain.GameState, error) {
	if msg, ok := cmd.(ports.SendMessage); ok {
		m.sent = append(m.sent, msg)
	}
	if m.sendFunc != nil {
		return m.sendFunc(ctx, cmd)
	}
	return &domain.GameState{}, nil
}

type mockStore struct {
	added         []string
	blacklistErr  error
	blacklistFunc func(name string) error
}

func (m *mockStore) GetSnapshot(ctx context.Context) (map[string]int, error) { return nil, nil }
func (m *mockStore) SaveSnapshot(ctx context.Context, players []domain.PlayerInfo) error {
	return nil
}
func (m *mockStore) GetBlacklist(ctx context.Context) ([]string, error) { return nil, nil }
func (m *mockStore) Close()                                             {}

func (m *mockStore) AddToBlacklist(ctx context.Context, name string) error {
	if m.blacklistFunc != nil {
		return m.blacklistFunc(name)
	}
	m.added = append(m.added, name)
	return m.blacklistErr
}

func assignmentsFor(names ...string) []domain.Assignment {
	at := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	var out []domain.Assignment
	for i, name := range names {
		out = append(out, domain.Assignment{
			Player: domain.LevelChange{Name: name, From: 100, To: 105, Delta: 5},
			SendAt: at.Add(time.Duration(i*10) * time.Minute),
		})
	}
	return out
}

func TestSender_Run_SendsAndBlacklists(t *testing.T) {
	session := &mockSession{}
	store := &mockStore{}
	sender := NewSender(session, store, "Spaceengineers")

	err := sender.Run(context.Background(), assignmentsFor("Ava", "Bo"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.sent) != 2 {
		t.Fatalf("expected 2 mails, got %d", len(session.sent))
	}
	if session.sent[0].To != "Ava" || session.sent[1].To != "Bo" {
		t.Errorf("expected mails to Ava then Bo, got %v", session.sent)
	}
	if !strings.Contains(session.sent[0].Message, "Greetings Ava.") {
		t.Errorf("expected personalized mail body, got %q", session.sent[0].Message)
	}
	if !strings.Contains(session.sent[0].Message, "Spaceengineers") {
		t.Error("expected guild name in mail body")
	}

	if len(store.added) != 2 || store.added[0] != "Ava" || store.added[1] != "Bo" {
		t.Errorf("expected both winners blacklisted, got %v", store.added)
	}
}

func TestSender_Run_FailedSendIsSkippedNotBlacklisted(t *testing.T) {
	session := &mockSession{}
	session.sendFunc = func(ctx context.Context, cmd ports.Command) (*domain.GameState, error) {
		if msg, ok := cmd.(ports.SendMessage); ok && msg.To == "Ava" {
			return nil, errors.New("mailbox full")
		}
		return &domain.GameState{}, nil
	}
	store := &mockStore{}
	sender := NewSender(session, store, "Spaceengineers")

	err := sender.Run(context.Background(), assignmentsFor("Ava", "Bo"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ava's send failed, Bo's still went out.
	if len(session.sent) != 2 {
		t.Fatalf("expected 2 attempted mails, got %d", len(session.sent))
	}
	if len(store.added) != 1 || store.added[0] != "Bo" {
		t.Errorf("expected only Bo blacklisted, got %v", store.added)
	}
}

func TestSender_Run_BlacklistFailureIsNotFatal(t *testing.T) {
	session := &mockSession{}
	store := &mockStore{blacklistFunc: func(name string) error {
		return errors.New("connection reset")
	}}
	sender := NewSender(session, store, "Spaceengineers")

	if err := sender.Run(context.Background(), assignmentsFor("Ava", "Bo"), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.sent) != 2 {
		t.Errorf("expected both mails sent despite blacklist errors, got %d", len(session.sent))
	}
}

func TestSender_Run_WaitsUntilScheduledTime(t *testing.T) {
	session := &mockSession{}
	store := &mockStore{}
	sender := NewSender(session, store, "Spaceengineers")

	// Pretend it is already past every scheduled time, so no timer fires.
	sender.now = func() time.Time {
		return time.Date(2026, time.August, 28, 18, 0, 0, 0, time.UTC)
	}

	if err := sender.Run(context.Background(), assignmentsFor("Ava"), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.sent) != 1 {
		t.Errorf("expected mail sent immediately for past schedule, got %d", len(session.sent))
	}
}

func TestSender_Run_CancelledWhileWaiting(t *testing.T) {
	session := &mockSession{}
	store := &mockStore{}
	sender := NewSender(session, store, "Spaceengineers")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	future := []domain.Assignment{{
		Player: domain.LevelChange{Name: "Ava"},
		SendAt: time.Now().Add(time.Hour),
	}}

	err := sender.Run(ctx, future, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(session.sent) != 0 {
		t.Errorf("expected no mail after cancellation, got %d", len(session.sent))
	}
}
