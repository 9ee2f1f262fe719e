// Package scanner walks the Hall of Fame page by page and collects unguilded
// players worth recruiting.
package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/metrics"
)

type Options struct {
	// MinLevel retains only players strictly above this level. Zero disables
	// the level filter and keeps every unguilded player.
	MinLevel int

	// MaxPages bounds the scan against a server that never returns an empty
	// page. Sized for roughly 5000 entries at ~50 per page by default.
	MaxPages int

	// ContinueOnError keeps the results gathered so far when a page fetch
	// fails instead of propagating the error.
	ContinueOnError bool
}

type Scanner struct {
	session ports.Session
	opts    Options
}

func New(session ports.Session, opts Options) *Scanner {
	return &Scanner{
		session: session,
		opts:    opts,
	}
}

// Scan requests pages in strictly increasing order, one at a time, until a
// page comes back empty, a fetch fails, or the page cap is reached. Results
// keep page-then-in-page order.
func (s *Scanner) Scan(ctx context.Context) ([]domain.PlayerInfo, error) {
	result := []domain.PlayerInfo{}

	for page := 0; page < s.opts.MaxPages; page++ {
		slog.Info("Fetching hall of fame page", "page", page)

		gs, err := s.session.Send(ctx, ports.HallOfFamePage{Page: page})
		if err != nil {
			if !s.opts.ContinueOnError {
				return nil, fmt.Errorf("fetch hall of fame page %d: %w", page, err)
			}
			slog.Error("Failed to fetch page, keeping results gathered so far", "page", page, "error", err)
			break
		}

		players := gs.HallOfFame
		if len(players) == 0 {
			slog.Info("Reached end of hall of fame", "pages", page)
			break
		}

		slog.Info("Fetched hall of fame page", "page", page, "players", len(players))
		metrics.HallOfFamePages.Inc()

		for _, p := range players {
			if s.qualifies(p) {
				result = append(result, domain.PlayerInfo{Name: p.Name, Level: p.Level})
				metrics.PlayersCollected.Inc()
			}
		}
	}

	return result, nil
}

// qualifies is a pure per-record filter: unguilded, and above the level
// threshold when one is configured.
func (s *Scanner) qualifies(p domain.Player) bool {
	if p.Guild != "" {
		return false
	}
	return s.opts.MinLevel == 0 || p.Level > s.opts.MinLevel
}
