// Package discord announces recruitment rounds to a Discord channel. The
// announcement is strictly best effort; the in-game campaign never depends
// on it.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/formatting"
	"sf-recruiter/internal/metrics"
)

var _ ports.Notifier = (*Notifier)(nil)

type DiscordSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Notifier struct {
	session   DiscordSession
	channelID string
}

// NewNotifier builds a REST-only Discord sender; no gateway connection is
// opened for a one-shot announcement.
func NewNotifier(token, channelID string) (*Notifier, error) {
	if token == "" || channelID == "" {
		return nil, fmt.Errorf("discord token and channel id are required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &Notifier{session: session, channelID: channelID}, nil
}

func (n *Notifier) AnnounceWinners(assignments []domain.Assignment) error {
	content := formatting.MsgWinnersAnnouncement(assignments)

	if _, err := n.session.ChannelMessageSend(n.channelID, content); err != nil {
		slog.Error("Failed to send winners announcement", "channel_id", n.channelID, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("failure").Inc()
		return err
	}

	metrics.DiscordMessagesSent.WithLabelValues("success").Inc()
	return nil
}
