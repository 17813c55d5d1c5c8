package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flor3z/sensei-bot/internal/announce"
	"github.com/flor3z/sensei-bot/internal/config"
	"github.com/flor3z/sensei-bot/internal/poller"
)

func testConfig() *config.Config {
	return &config.Config{
		DiscordToken:             "token",
		GuildID:                  "111",
		ChannelID:                "222",
		ServerURL:                "http://localhost:5000",
		BotSecret:                "secret",
		MatchupsEndpoint:         "matchups",
		BackendRequestsPerSecond: 5,
		AnnounceMode:             "replace",
		MessageLayout:            "combined",
		PollingInterval:          5 * time.Second,
		RequestTimeout:           10 * time.Second,
		LogLevel:                 "info",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(cfg *config.Config)
		wantAnnouncer announce.Announcer
		wantLayout    poller.Layout
		wantErr       string
	}{
		{
			name:          "Should replace announcements by default",
			wantAnnouncer: &announce.Replacer{},
			wantLayout:    poller.LayoutCombined,
		},
		{
			name: "Should build the legacy append and separate setup",
			modify: func(cfg *config.Config) {
				cfg.AnnounceMode = "append"
				cfg.MessageLayout = "separate"
			},
			wantAnnouncer: &announce.Appender{},
			wantLayout:    poller.LayoutSeparate,
		},
		{
			name: "Should allow separate messages with replace",
			modify: func(cfg *config.Config) {
				cfg.MessageLayout = "separate"
			},
			wantAnnouncer: &announce.Replacer{},
			wantLayout:    poller.LayoutSeparate,
		},
		{
			name:    "Should reject an unknown announce mode",
			modify:  func(cfg *config.Config) { cfg.AnnounceMode = "edit" },
			wantErr: "ANNOUNCE_MODE",
		},
		{
			name:    "Should reject an unknown layout",
			modify:  func(cfg *config.Config) { cfg.MessageLayout = "thread" },
			wantErr: "MESSAGE_LAYOUT",
		},
		{
			name:    "Should reject an unknown matchups endpoint",
			modify:  func(cfg *config.Config) { cfg.MatchupsEndpoint = "upcoming-matchups" },
			wantErr: "MATCHUPS_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.modify != nil {
				tt.modify(cfg)
			}

			b, err := New(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantAnnouncer, b.announcer)
			assert.Equal(t, tt.wantLayout, b.layout)
		})
	}
}

func TestNewBackend(t *testing.T) {
	cfg := testConfig()
	cfg.MatchupsEndpoint = "decided-matchups"

	client, err := NewBackend(cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestStartPolling_RequiresConnect(t *testing.T) {
	b, err := New(testConfig())
	require.NoError(t, err)

	err = b.StartPolling(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Nil(t, b.poller)
}
