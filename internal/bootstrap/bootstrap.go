// Package bootstrap covers the login sequence every binary shares:
// authenticate, take the account's first character, refresh its game state.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"sf-recruiter/internal/config"
	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/formatting"
)

// FirstSession logs in and returns the first character's session with a
// fresh game state. The Update is required by the game before commands like
// SendMessage, not a nicety.
func FirstSession(ctx context.Context, auth ports.Authenticator, cfg *config.Config) (ports.Session, error) {
	sessions, err := auth.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if len(sessions) == 0 {
		return nil, errors.New(formatting.MsgNoCharacters)
	}

	session := sessions[0]
	if _, err := session.Send(ctx, ports.Update{}); err != nil {
		return nil, fmt.Errorf("refresh game state: %w", err)
	}

	return session, nil
}
