package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/flor3z/sensei-bot/internal/announce"
	"github.com/flor3z/sensei-bot/internal/backend"
	"github.com/flor3z/sensei-bot/internal/config"
	"github.com/flor3z/sensei-bot/internal/discord"
	"github.com/flor3z/sensei-bot/internal/poller"
)

// ErrNotConnected is returned by StartPolling when Connect has not succeeded
var ErrNotConnected = errors.New("bot is not connected to Discord")

// Bot represents the Discord bot instance
type Bot struct {
	config    *config.Config
	session   *discordgo.Session
	backend   *backend.Client
	discord   *discord.Gateway
	announcer announce.Announcer
	layout    poller.Layout
	poller    *poller.Poller
	connected bool
}

// New creates a new Bot instance
func New(cfg *config.Config) (*Bot, error) {
	mode, err := announce.ParseMode(cfg.AnnounceMode)
	if err != nil {
		return nil, fmt.Errorf("invalid ANNOUNCE_MODE: %w", err)
	}
	layout, err := poller.ParseLayout(cfg.MessageLayout)
	if err != nil {
		return nil, fmt.Errorf("invalid MESSAGE_LAYOUT: %w", err)
	}
	client, err := NewBackend(cfg)
	if err != nil {
		return nil, err
	}

	// Create Discord session
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Member lookups need the privileged guild members intent
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages
	session.State.TrackMembers = true

	gw := discord.NewGateway(session, cfg.ChannelID, cfg.GuildID)

	announcer, err := announce.New(mode, gw)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		config:    cfg,
		session:   session,
		backend:   client,
		discord:   gw,
		announcer: announcer,
		layout:    layout,
	}

	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Bot is ready", "guilds", len(r.Guilds))
	})

	return b, nil
}

// NewBackend creates the tournament backend client described by cfg
func NewBackend(cfg *config.Config) (*backend.Client, error) {
	endpoint, err := backend.ParseEndpoint(cfg.MatchupsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCHUPS_ENDPOINT: %w", err)
	}

	return backend.NewClient(backend.Options{
		BaseURL:           cfg.ServerURL,
		Secret:            cfg.BotSecret,
		MatchupsEndpoint:  endpoint,
		RequestsPerSecond: cfg.BackendRequestsPerSecond,
		Timeout:           cfg.RequestTimeout,
	}), nil
}

// Connect opens the Discord connection and asks for the guild member list
func (b *Bot) Connect(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("Connected to Discord", "user", b.session.State.User.Username)

	// Without the member list every lookup falls back to the search endpoint
	if err := b.discord.RequestMembers(); err != nil {
		slog.Warn("Could not request guild members", "guildID", b.config.GuildID, "error", err)
	}

	if err := b.backend.Ping(ctx); err != nil {
		slog.Error("Backend liveness check failed", "error", err)
	}

	b.connected = true
	return nil
}

// StartPolling starts the schedule poller in the background
func (b *Bot) StartPolling(ctx context.Context) error {
	if !b.connected {
		return ErrNotConnected
	}

	b.poller = poller.New(poller.Config{
		Backend:   b.backend,
		Resolver:  b.discord,
		Announcer: b.announcer,
		Layout:    b.layout,
		Interval:  b.config.PollingInterval,
		Timeout:   b.config.RequestTimeout,
	})
	b.poller.Start(ctx)

	return nil
}

// Stop gracefully shuts down the bot
func (b *Bot) Stop() error {
	// Stop the poller
	if b.poller != nil {
		b.poller.Stop()
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}
