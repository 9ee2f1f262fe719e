package config

import (
	"errors"
	"fmt"
)

// Validation constants define acceptable bounds for configuration values
const (
	// HOF_MAX_PAGES validation; the cap exists so a misbehaving server that
	// never returns an empty page cannot keep the scan alive forever.
	minMaxPages = 1
	maxMaxPages = 10000

	// Campaign window validation (hours of day)
	minSendHour = 0
	maxSendHour = 23
)

// Validate checks if the configuration values are valid and within acceptable
// ranges. It returns all validation errors at once using errors.Join.
//
// Returns nil if all validations pass, otherwise returns a combined error
// containing all validation failures.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateScanner(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateCampaign(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDiscord(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

// validateScanner ensures the Hall of Fame scan bounds are sane
func (c *Config) validateScanner() error {
	var errs []error

	if c.MinLevel < 0 {
		errs = append(errs, fmt.Errorf("HOF_MIN_LEVEL must not be negative, got %d (hint: 0 disables the level filter)", c.MinLevel))
	}

	if c.MaxPages < minMaxPages || c.MaxPages > maxMaxPages {
		errs = append(errs, fmt.Errorf("HOF_MAX_PAGES must be between %d and %d, got %d", minMaxPages, maxMaxPages, c.MaxPages))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// validateCampaign ensures the recruitment round knobs are usable
func (c *Config) validateCampaign() error {
	var errs []error

	if c.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("POOL_SIZE must be at least 1, got %d", c.PoolSize))
	}

	if c.WinnerCount < 1 {
		errs = append(errs, fmt.Errorf("WINNER_COUNT must be at least 1, got %d", c.WinnerCount))
	}

	if c.SendStartHour < minSendHour || c.SendStartHour > maxSendHour {
		errs = append(errs, fmt.Errorf("SEND_START_HOUR must be between %d and %d, got %d", minSendHour, maxSendHour, c.SendStartHour))
	}

	if c.SendEndHour < minSendHour || c.SendEndHour > maxSendHour {
		errs = append(errs, fmt.Errorf("SEND_END_HOUR must be between %d and %d, got %d", minSendHour, maxSendHour, c.SendEndHour))
	}

	if c.SendEndHour <= c.SendStartHour {
		errs = append(errs, fmt.Errorf("SEND_END_HOUR (%d) must be after SEND_START_HOUR (%d)", c.SendEndHour, c.SendStartHour))
	}

	if c.SendMinGap < 0 {
		errs = append(errs, fmt.Errorf("SEND_MIN_GAP must not be negative, got %v", c.SendMinGap))
	}

	if c.GuildName == "" {
		errs = append(errs, fmt.Errorf("GUILD_NAME cannot be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// validateDiscord ensures the announcement settings come as a pair
func (c *Config) validateDiscord() error {
	if c.DiscordToken != "" && c.DiscordChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	if c.DiscordToken == "" && c.DiscordChannelID != "" {
		return fmt.Errorf("DISCORD_TOKEN is required when DISCORD_CHANNEL_ID is set")
	}

	return nil
}
