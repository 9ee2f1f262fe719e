// Package activity turns two Hall of Fame scans into a recruitment round:
// players who gained levels since the previous snapshot are candidates, past
// winners are excluded, and a handful of winners is drawn and scheduled.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"golang.org/x/text/cases"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
)

// timeSlotAttempts bounds the search for a send time that honors the minimum
// gap; past that the remaining winners are dropped with a warning.
const timeSlotAttempts = 1000

type Options struct {
	PoolSize    int
	WinnerCount int
	StartHour   int
	EndHour     int
	MinGap      time.Duration
}

type Service struct {
	store ports.SnapshotStore
	opts  Options
	rng   *rand.Rand
}

// Plan is the outcome of one recruitment round draw.
type Plan struct {
	Scanned     int
	Active      []domain.LevelChange
	Pool        []domain.LevelChange
	Assignments []domain.Assignment
}

func NewService(store ports.SnapshotStore, opts Options) *Service {
	return &Service{
		store: store,
		opts:  opts,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// PlanRound diffs the current scan against the stored snapshot, saves the new
// snapshot, and draws scheduled winners from the most improved players.
func (s *Service) PlanRound(ctx context.Context, current []domain.PlayerInfo, now time.Time) (*Plan, error) {
	previous, err := s.store.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load previous snapshot: %w", err)
	}
	slog.Info("Loaded previous snapshot", "players", len(previous))

	blacklist, err := s.store.GetBlacklist(ctx)
	if err != nil {
		return nil, fmt.Errorf("load blacklist: %w", err)
	}

	if err := s.store.SaveSnapshot(ctx, current); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	slog.Info("Saved new snapshot", "players", len(current))

	active := ActivePlayers(previous, current)
	slog.Info("Found active players", "count", len(active))

	eligible := filterBlacklist(active, blacklist)
	slog.Info("Active players after blacklist", "count", len(eligible))

	pool := winnerPool(eligible, s.opts.PoolSize)
	winners := s.drawWinners(pool)
	slog.Info("Drew winners", "count", len(winners), "pool", len(pool))

	return &Plan{
		Scanned:     len(current),
		Active:      active,
		Pool:        pool,
		Assignments: s.assignTimes(winners, now),
	}, nil
}

// ActivePlayers returns the players whose level strictly increased since the
// previous snapshot. Players without a previous entry cannot have improved
// and are skipped; on the very first run this means no one is active.
func ActivePlayers(previous map[string]int, current []domain.PlayerInfo) []domain.LevelChange {
	var active []domain.LevelChange
	for _, p := range current {
		before, ok := previous[p.Name]
		if !ok {
			continue
		}
		if p.Level > before {
			active = append(active, domain.LevelChange{
				Name:  p.Name,
				From:  before,
				To:    p.Level,
				Delta: p.Level - before,
			})
		}
	}
	return active
}

// filterBlacklist drops players who already won, matching names case-folded
// so a rename trick like "gRimbold" does not dodge the list.
func filterBlacklist(active []domain.LevelChange, blacklist []string) []domain.LevelChange {
	caser := cases.Fold()
	banned := make(map[string]bool, len(blacklist))
	for _, name := range blacklist {
		banned[caser.String(name)] = true
	}

	var eligible []domain.LevelChange
	for _, p := range active {
		if banned[caser.String(p.Name)] {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}

// winnerPool keeps the poolSize most improved players, most improved first.
// Ties keep scan order.
func winnerPool(eligible []domain.LevelChange, poolSize int) []domain.LevelChange {
	pool := make([]domain.LevelChange, len(eligible))
	copy(pool, eligible)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Delta > pool[j].Delta
	})

	if len(pool) > poolSize {
		pool = pool[:poolSize]
	}
	return pool
}

// drawWinners samples winners uniformly without replacement; everyone wins
// when the pool is smaller than the winner count.
func (s *Service) drawWinners(pool []domain.LevelChange) []domain.LevelChange {
	n := s.opts.WinnerCount
	if n > len(pool) {
		n = len(pool)
	}
	if n == 0 {
		return nil
	}

	winners := make([]domain.LevelChange, 0, n)
	for _, idx := range s.rng.Perm(len(pool))[:n] {
		winners = append(winners, pool[idx])
	}
	return winners
}

// assignTimes gives each winner a random whole-minute send time within
// today's campaign window, keeping at least MinGap between any two times.
func (s *Service) assignTimes(winners []domain.LevelChange, now time.Time) []domain.Assignment {
	if len(winners) == 0 {
		return nil
	}

	startMin := s.opts.StartHour * 60
	endMin := s.opts.EndHour * 60
	gapMin := int(s.opts.MinGap.Minutes())

	var taken []int
	var assignments []domain.Assignment
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, winner := range winners {
		minute, ok := findSlot(s.rng, taken, startMin, endMin, gapMin)
		if !ok {
			slog.Warn("Could not fit all winners into the send window", "assigned", len(assignments), "winners", len(winners))
			break
		}
		taken = append(taken, minute)
		assignments = append(assignments, domain.Assignment{
			Player: winner,
			SendAt: midnight.Add(time.Duration(minute) * time.Minute),
		})
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].SendAt.Before(assignments[j].SendAt)
	})
	return assignments
}

func findSlot(rng *rand.Rand, taken []int, startMin, endMin, gapMin int) (int, bool) {
	for attempt := 0; attempt < timeSlotAttempts; attempt++ {
		candidate := startMin + rng.IntN(endMin-startMin+1)

		fits := true
		for _, minute := range taken {
			diff := candidate - minute
			if diff < 0 {
				diff = -diff
			}
			if diff < gapMin {
				fits = false
				break
			}
		}

		if fits {
			return candidate, true
		}
	}
	return 0, false
}
