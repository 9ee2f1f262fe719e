// Package campaign delivers the recruitment mails a plan scheduled, one
// winner at a time.
package campaign

import (
	"context"
	"log/slog"
	"time"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/formatting"
	"sf-recruiter/internal/metrics"
)

type Sender struct {
	session   ports.Session
	store     ports.SnapshotStore
	guildName string

	// now is swapped out in tests.
	now func() time.Time
}

func NewSender(session ports.Session, store ports.SnapshotStore, guildName string) *Sender {
	return &Sender{
		session:   session,
		store:     store,
		guildName: guildName,
		now:       time.Now,
	}
}

// Run works through the assignments in order. Unless immediate is set, each
// send waits for its scheduled time; times already in the past send right
// away. A failed send is logged and skipped, never retried, and only a
// delivered mail puts the winner on the blacklist.
func (s *Sender) Run(ctx context.Context, assignments []domain.Assignment, immediate bool) error {
	for _, a := range assignments {
		if !immediate {
			if err := s.waitUntil(ctx, a.SendAt); err != nil {
				return err
			}
		}

		name := a.Player.Name
		body := formatting.RecruitmentMessage(name, s.guildName)

		if _, err := s.session.Send(ctx, ports.SendMessage{To: name, Message: body}); err != nil {
			slog.Error("Failed to send recruitment mail", "to", name, "error", err)
			metrics.MailsSent.WithLabelValues("failure").Inc()
			continue
		}

		slog.Info("Sent recruitment mail", "to", name)
		metrics.MailsSent.WithLabelValues("success").Inc()

		if err := s.store.AddToBlacklist(ctx, name); err != nil {
			slog.Error("Failed to blacklist winner, they may win again", "name", name, "error", err)
		}
	}

	return nil
}

func (s *Sender) waitUntil(ctx context.Context, at time.Time) error {
	d := at.Sub(s.now())
	if d <= 0 {
		return nil
	}

	slog.Info("Waiting for next send", "at", at.Format("15:04"), "wait", d.Round(time.Second))

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
