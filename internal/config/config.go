package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Username string
	Password string

	APIBaseURL string

	MinLevel int
	MaxPages int
	Strict   bool

	DatabaseURL string

	PoolSize      int
	WinnerCount   int
	SendStartHour int
	SendEndHour   int
	SendMinGap    time.Duration
	GuildName     string

	DiscordToken     string
	DiscordChannelID string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	username := os.Getenv("SF_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("SF_USERNAME is not set (your S&F account e-mail)")
	}

	password := os.Getenv("SF_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("SF_PASSWORD is not set (your S&F account password)")
	}

	cfg := &Config{
		Username:         username,
		Password:         password,
		APIBaseURL:       envString("SF_API_URL", ""),
		MinLevel:         envInt("HOF_MIN_LEVEL", 100),
		MaxPages:         envInt("HOF_MAX_PAGES", 100),
		Strict:           envBool("HOF_STRICT", false),
		DatabaseURL:      envString("DATABASE_URL", ""),
		PoolSize:         envInt("POOL_SIZE", 50),
		WinnerCount:      envInt("WINNER_COUNT", 10),
		SendStartHour:    envInt("SEND_START_HOUR", 12),
		SendEndHour:      envInt("SEND_END_HOUR", 17),
		SendMinGap:       envDuration("SEND_MIN_GAP", 10*time.Minute),
		GuildName:        envString("GUILD_NAME", "Spaceengineers"),
		DiscordToken:     envString("DISCORD_TOKEN", ""),
		DiscordChannelID: envString("DISCORD_CHANNEL_ID", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
