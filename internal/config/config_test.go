package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("DISCORD_GUILD_ID", "111")
	t.Setenv("DISCORD_CHANNEL_ID", "222")
	t.Setenv("SERVER_URL", "http://localhost:5000")
	t.Setenv("BOT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "111", cfg.GuildID)
	assert.Equal(t, "222", cfg.ChannelID)
	assert.Equal(t, "matchups", cfg.MatchupsEndpoint)
	assert.Equal(t, "replace", cfg.AnnounceMode)
	assert.Equal(t, "combined", cfg.MessageLayout)
	assert.Equal(t, 5*time.Second, cfg.PollingInterval)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.InDelta(t, 5.0, cfg.BackendRequestsPerSecond, 0.001)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCHUPS_ENDPOINT", "decided-matchups")
	t.Setenv("ANNOUNCE_MODE", "append")
	t.Setenv("MESSAGE_LAYOUT", "separate")
	t.Setenv("POLLING_INTERVAL_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "decided-matchups", cfg.MatchupsEndpoint)
	assert.Equal(t, "append", cfg.AnnounceMode)
	assert.Equal(t, "separate", cfg.MessageLayout)
	assert.Equal(t, 30*time.Second, cfg.PollingInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Should require the bot token", key: "DISCORD_BOT_TOKEN", value: ""},
		{name: "Should require the bot secret", key: "BOT_SECRET", value: ""},
		{name: "Should reject a non-numeric interval", key: "POLLING_INTERVAL_SECONDS", value: "soon"},
		{name: "Should reject a zero interval", key: "POLLING_INTERVAL_SECONDS", value: "0"},
		{name: "Should reject a negative rate", key: "BACKEND_REQUESTS_PER_SECOND", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
