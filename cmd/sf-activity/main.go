// sf-activity runs one recruitment round: scan the Hall of Fame, diff the
// levels against the previous run, draw winners among the most improved
// unguilded players, and mail each one a guild invitation at a randomized
// time. Past winners never win twice.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sf-recruiter/internal/adapters/discord"
	"sf-recruiter/internal/adapters/sfapi"
	"sf-recruiter/internal/adapters/storage/postgres"
	"sf-recruiter/internal/bootstrap"
	"sf-recruiter/internal/config"
	"sf-recruiter/internal/core/domain"
	"sf-recruiter/internal/core/services/activity"
	"sf-recruiter/internal/core/services/campaign"
	"sf-recruiter/internal/core/services/scanner"
	"sf-recruiter/internal/formatting"
)

func main() {
	initLogger()

	now := flag.Bool("now", false, "send all mails immediately instead of waiting for the scheduled times")
	dryRun := flag.Bool("dry-run", false, "plan the round and print it without sending anything")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *now, *dryRun); err != nil {
		slog.Error("Recruitment round failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, now, dryRun bool) error {
	store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	client := sfapi.NewClient(cfg.APIBaseURL)
	session, err := bootstrap.FirstSession(ctx, client, cfg)
	if err != nil {
		return err
	}
	slog.Info("Logged in", "character", session.Character())

	// The round tolerates a late page failure: a partial scan still beats
	// skipping the day.
	sc := scanner.New(session, scanner.Options{
		MinLevel:        cfg.MinLevel,
		MaxPages:        cfg.MaxPages,
		ContinueOnError: true,
	})
	players, err := sc.Scan(ctx)
	if err != nil {
		return err
	}

	svc := activity.NewService(store, activity.Options{
		PoolSize:    cfg.PoolSize,
		WinnerCount: cfg.WinnerCount,
		StartHour:   cfg.SendStartHour,
		EndHour:     cfg.SendEndHour,
		MinGap:      cfg.SendMinGap,
	})

	plan, err := svc.PlanRound(ctx, players, time.Now())
	if err != nil {
		return err
	}
	slog.Info("Round planned", "scanned", plan.Scanned, "active", len(plan.Active), "winners", len(plan.Assignments))

	if dryRun {
		for _, a := range plan.Assignments {
			slog.Info("Would send", "plan", formatting.MsgPlannedSend(a))
		}
		return nil
	}

	announceWinners(cfg, plan.Assignments)

	sender := campaign.NewSender(session, store, cfg.GuildName)
	return sender.Run(ctx, plan.Assignments, now)
}

// announceWinners posts the draw to Discord when configured. Failures are
// logged only; the in-game campaign proceeds regardless.
func announceWinners(cfg *config.Config, assignments []domain.Assignment) {
	if cfg.DiscordToken == "" {
		return
	}

	notifier, err := discord.NewNotifier(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		slog.Error("Failed to create discord notifier", "error", err)
		return
	}

	if err := notifier.AnnounceWinners(assignments); err != nil {
		slog.Error("Failed to announce winners", "error", err)
	}
}

func initLogger() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
