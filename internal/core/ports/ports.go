package ports

import (
	"context"

	"sf-recruiter/internal/core/domain"
)

// Command is the closed set of commands a session can dispatch. The gateway
// owns encoding, signing and retries; callers only pick a variant.
type Command interface {
	isCommand()
}

// Update refreshes the session's game state. The game requires a fresh state
// before certain commands, sending a message among them.
type Update struct{}

// HallOfFamePage requests one page of the ranked player listing, zero-based.
type HallOfFamePage struct {
	Page int
}

// SendMessage delivers one in-game message to a player by name.
type SendMessage struct {
	To      string
	Message string
}

func (Update) isCommand()         {}
func (HallOfFamePage) isCommand() {}
func (SendMessage) isCommand()    {}

// Session is an authenticated handle bound to one character.
type Session interface {
	Character() string
	Send(ctx context.Context, cmd Command) (*domain.GameState, error)
}

// Authenticator logs into an account and returns one session per character.
type Authenticator interface {
	Login(ctx context.Context, username, password string) ([]Session, error)
}

// SnapshotStore persists the level snapshot and the winner blacklist between
// recruitment rounds.
type SnapshotStore interface {
	GetSnapshot(ctx context.Context) (map[string]int, error)
	SaveSnapshot(ctx context.Context, players []domain.PlayerInfo) error
	GetBlacklist(ctx context.Context) ([]string, error)
	AddToBlacklist(ctx context.Context, name string) error
	Close()
}

// Notifier announces a round's drawn winners out of band.
type Notifier interface {
	AnnounceWinners(assignments []domain.Assignment) error
}
