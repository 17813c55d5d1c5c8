package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flor3z/sensei-bot/internal/bot"
	"github.com/flor3z/sensei-bot/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "sensei",
		Short: "Pings tournament players on Discord when their match is up",
		// Running without a subcommand starts the bot
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:          "run",
			Short:        "Connect to Discord and start polling the match schedule",
			RunE:         func(cmd *cobra.Command, args []string) error { return run(cmd.Context()) },
			SilenceUsage: true,
		},
		&cobra.Command{
			Use:          "ping",
			Short:        "Check that the tournament backend is up and accepts the bot secret",
			RunE:         func(cmd *cobra.Command, args []string) error { return ping(cmd.Context()) },
			SilenceUsage: true,
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.Info("Starting Sensei match ping bot")

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b, err := bot.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		return err
	}

	if err := b.Connect(ctx); err != nil {
		slog.Error("Failed to connect bot", "error", err)
		return err
	}

	if err := b.StartPolling(ctx); err != nil {
		slog.Error("Failed to start polling", "error", err)
		_ = b.Stop()
		return err
	}

	slog.Info("Bot is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
	cancel()

	// Stop the bot gracefully
	if err := b.Stop(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	slog.Info("Bot stopped")
	return nil
}

func ping(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := bot.NewBackend(cfg)
	if err != nil {
		slog.Error("Invalid backend configuration", "error", err)
		return err
	}

	if err := client.Ping(ctx); err != nil {
		slog.Error("Backend ping failed", "server", cfg.ServerURL, "error", err)
		return err
	}

	fmt.Println("Backend is up and accepted the bot secret")
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return nil, err
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
