package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// DBTX is the pgx query surface the store needs; pgxpool.Pool satisfies it
// and tests substitute a mock.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...interface{}) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS hof_snapshot (
	name TEXT PRIMARY KEY,
	level INT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS winner_blacklist (
	name TEXT PRIMARY KEY,
	won_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type Store struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewStore(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{pool: pool, db: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetSnapshot returns the levels saved by the previous run. An empty map on
// the very first run is fine: with no previous entries no one counts as
// active, matching the first-run behavior.
func (s *Store) GetSnapshot(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.Query(ctx, `SELECT name, level FROM hof_snapshot`)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var name string
		var level int32
		if err := rows.Scan(&name, &level); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		result[name] = int(level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	return result, nil
}

// SaveSnapshot replaces the stored snapshot with the given scan.
func (s *Store) SaveSnapshot(ctx context.Context, players []domain.PlayerInfo) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM hof_snapshot`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	for _, p := range players {
		_, err := s.db.Exec(ctx,
			`INSERT INTO hof_snapshot (name, level) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET level = EXCLUDED.level, updated_at = now()`,
			p.Name, int32(p.Level),
		)
		if err != nil {
			return fmt.Errorf("save snapshot entry %q: %w", p.Name, err)
		}
	}

	return nil
}

func (s *Store) GetBlacklist(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM winner_blacklist ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("get blacklist: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan blacklist row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}

	return names, nil
}

func (s *Store) AddToBlacklist(ctx context.Context, name string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO winner_blacklist (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("add to blacklist: %w", err)
	}
	return nil
}
