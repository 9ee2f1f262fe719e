// sf-fetcher scans the Hall of Fame and prints every qualifying unguilded
// player as a pretty JSON list on stdout. Progress goes to stderr.
package main

import (
	"context"
	"log/slog"
	"os"

	"sf-recruiter/internal/adapters/sfapi"
	"sf-recruiter/internal/bootstrap"
	"sf-recruiter/internal/config"
	"sf-recruiter/internal/core/services/scanner"
	"sf-recruiter/internal/emit"
)

func main() {
	initLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client := sfapi.NewClient(cfg.APIBaseURL)
	session, err := bootstrap.FirstSession(ctx, client, cfg)
	if err != nil {
		slog.Error("Failed to start session", "error", err)
		os.Exit(1)
	}
	slog.Info("Logged in", "character", session.Character())

	sc := scanner.New(session, scanner.Options{
		MinLevel:        cfg.MinLevel,
		MaxPages:        cfg.MaxPages,
		ContinueOnError: !cfg.Strict,
	})

	players, err := sc.Scan(ctx)
	if err != nil {
		slog.Error("Hall of fame scan failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Scan finished", "players", len(players))

	if err := emit.JSON(os.Stdout, players); err != nil {
		slog.Error("Failed to write results", "error", err)
		os.Exit(1)
	}
}

func initLogger() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
