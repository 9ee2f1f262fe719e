// sf-mailer logs in and sends a single in-game message:
//
//	sf-mailer <recipient> <message words...>
package main

import (
	"context"
	"log/slog"
	"os"

	"sf-recruiter/internal/adapters/sfapi"
	"sf-recruiter/internal/bootstrap"
	"sf-recruiter/internal/config"
	"sf-recruiter/internal/core/ports"
	"sf-recruiter/internal/metrics"
)

func main() {
	initLogger()

	// Arguments are checked before any network activity.
	to, body, err := parseArgs(os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(1)
	}

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

	if _, err := session.Send(ctx, ports.SendMessage{To: to, Message: body}); err != nil {
		metrics.MailsSent.WithLabelValues("failure").Inc()
		slog.Error("Failed to send message", "to", to, "error", err)
		os.Exit(1)
	}

	metrics.MailsSent.WithLabelValues("success").Inc()
	slog.Info("Message delivered", "to", to, "from", session.Character())
}

func initLogger() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
