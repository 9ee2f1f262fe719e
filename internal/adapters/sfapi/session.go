package sfapi

import (
	"context"
	"fmt"
	"net/url"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
)

var _ ports.Session = (*Session)(nil)

// Session is an authenticated gateway session bound to one character.
type Session struct {
	client    *Client
	id        string
	character string
}

func (s *Session) Character() string {
	return s.character
}

// Send dispatches one tagged command and returns the resulting game state.
func (s *Session) Send(ctx context.Context, cmd ports.Command) (*domain.GameState, error) {
	payload, err := encodeCommand(cmd)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/sessions/%s/command", s.client.baseURL, url.PathEscape(s.id))

	var data gameStateResponse
	if err := s.client.postAndDecode(ctx, u, payload, &data); err != nil {
		return nil, fmt.Errorf("send command %s: %w", payload.Type, err)
	}

	return decodeGameState(&data), nil
}

func encodeCommand(cmd ports.Command) (commandRequest, error) {
	switch c := cmd.(type) {
	case ports.Update:
		return commandRequest{Type: "Update"}, nil
	case ports.HallOfFamePage:
		return commandRequest{Type: "HallOfFamePage", Page: c.Page}, nil
	case ports.SendMessage:
		return commandRequest{Type: "SendMessage", To: c.To, Message: c.Message}, nil
	default:
		return commandRequest{}, fmt.Errorf("unsupported command type %T", cmd)
	}
}

func decodeGameState(data *gameStateResponse) *domain.GameState {
	gs := &domain.GameState{}
	for _, p := range data.HallOfFame.Players {
		gs.HallOfFame = append(gs.HallOfFame, domain.Player{
			Rank:  p.Rank,
			Name:  p.Name,
			Level: p.Level,
			Guild: p.Guild,
		})
	}
	return gs
}
