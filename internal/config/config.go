package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken string
	GuildID      string
	ChannelID    string

	// Tournament backend
	ServerURL                string
	BotSecret                string
	MatchupsEndpoint         string
	BackendRequestsPerSecond float64

	// Announcements, validated where the announcer and poller are built
	AnnounceMode  string
	MessageLayout string

	// Polling
	PollingInterval time.Duration
	RequestTimeout  time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:     os.Getenv("DISCORD_BOT_TOKEN"),
		GuildID:          os.Getenv("DISCORD_GUILD_ID"),
		ChannelID:        os.Getenv("DISCORD_CHANNEL_ID"),
		ServerURL:        os.Getenv("SERVER_URL"),
		BotSecret:        os.Getenv("BOT_SECRET"),
		MatchupsEndpoint: getEnvOrDefault("MATCHUPS_ENDPOINT", "matchups"),
		AnnounceMode:     getEnvOrDefault("ANNOUNCE_MODE", "replace"),
		MessageLayout:    getEnvOrDefault("MESSAGE_LAYOUT", "combined"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.PollingInterval, err = getSeconds("POLLING_INTERVAL_SECONDS", "5"); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getSeconds("REQUEST_TIMEOUT_SECONDS", "10"); err != nil {
		return nil, err
	}

	rps := getEnvOrDefault("BACKEND_REQUESTS_PER_SECOND", "5")
	if cfg.BackendRequestsPerSecond, err = strconv.ParseFloat(rps, 64); err != nil || cfg.BackendRequestsPerSecond <= 0 {
		return nil, fmt.Errorf("invalid BACKEND_REQUESTS_PER_SECOND: %q", rps)
	}

	// Validate required fields
	required := []struct{ key, value string }{
		{"DISCORD_BOT_TOKEN", cfg.DiscordToken},
		{"DISCORD_GUILD_ID", cfg.GuildID},
		{"DISCORD_CHANNEL_ID", cfg.ChannelID},
		{"SERVER_URL", cfg.ServerURL},
		{"BOT_SECRET", cfg.BotSecret},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%s is required", r.key)
		}
	}

	return cfg, nil
}

// getSeconds parses a positive whole number of seconds
func getSeconds(key, defaultValue string) (time.Duration, error) {
	raw := getEnvOrDefault(key, defaultValue)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return time.Duration(n) * time.Second, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
