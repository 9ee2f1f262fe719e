package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sf_gateway_requests_total",
		Help: "Total number of session gateway requests",
	}, []string{"endpoint", "status"})

	GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sf_gateway_request_duration_seconds",
		Help:    "Duration of session gateway requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	HallOfFamePages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sf_hall_of_fame_pages_total",
		Help: "The total number of Hall of Fame pages scanned",
	})

	PlayersCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sf_players_collected_total",
		Help: "The total number of qualifying players collected",
	})

	MailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sf_mails_sent_total",
		Help: "Total number of in-game mails sent",
	}, []string{"status"})

	DiscordMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sf_discord_messages_sent_total",
		Help: "Total number of Discord announcements sent",
	}, []string{"status"})
)
