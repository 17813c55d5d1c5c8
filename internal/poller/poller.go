package poller

//go:generate mockgen -source=poller.go -destination=../../mocks/poller.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flor3z/sensei-bot/internal/announce"
	"github.com/flor3z/sensei-bot/internal/notify"
	"github.com/flor3z/sensei-bot/internal/tournament"
)

// Layout selects how the current and next announcements are shaped
type Layout string

const (
	// LayoutCombined posts both groups as one message
	LayoutCombined Layout = "combined"
	// LayoutSeparate posts one message per group, current first
	LayoutSeparate Layout = "separate"
)

// ParseLayout validates a layout name
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutCombined, LayoutSeparate:
		return Layout(s), nil
	default:
		return "", fmt.Errorf("unknown message layout %q (want %q or %q)", s, LayoutCombined, LayoutSeparate)
	}
}

// Backend is the part of the tournament backend the poller reads
type Backend interface {
	Matchups(ctx context.Context) ([][]tournament.PlayerID, error)
	DiscordNames(ctx context.Context) (tournament.Directory, error)
	PlayersInfo(ctx context.Context) (tournament.Directory, error)
}

// Config holds the poller's collaborators and timing
type Config struct {
	Backend   Backend
	Resolver  notify.MemberResolver
	Announcer announce.Announcer
	Layout    Layout
	Interval  time.Duration
	Timeout   time.Duration // bound on one tick's I/O, 0 means none
}

// Poller periodically checks the match schedule and pings players when it changes.
// All ticks run on the single goroutine started by Start, so they never overlap.
type Poller struct {
	backend   Backend
	resolver  notify.MemberResolver
	announcer announce.Announcer
	layout    Layout
	interval  time.Duration
	timeout   time.Duration

	mu   sync.RWMutex // guards writes to last and reads from other goroutines
	last tournament.Snapshot

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new Poller
func New(cfg Config) *Poller {
	if cfg.Layout == "" {
		cfg.Layout = LayoutCombined
	}
	return &Poller{
		backend:   cfg.Backend,
		resolver:  cfg.Resolver,
		announcer: cfg.Announcer,
		layout:    cfg.Layout,
		interval:  cfg.Interval,
		timeout:   cfg.Timeout,
		stopChan:  make(chan struct{}),
	}
}

// Start runs the polling loop in the background until ctx is cancelled or Stop is called
func (p *Poller) Start(ctx context.Context) {
	slog.Info("Starting poller", "interval", p.interval, "layout", p.layout)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

func (p *Poller) run(ctx context.Context) {
	select {
	case <-p.stopChan:
		slog.Info("Poller stopped before first poll")
		return
	default:
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Initial poll
	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Poller stopped (context cancelled)")
			return
		case <-p.stopChan:
			slog.Info("Poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Stop signals the poller to stop and waits for the current tick to finish
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
	p.wg.Wait()
}

// Last returns the snapshot the next tick compares against.
// Safe to call while the poller is running.
func (p *Poller) Last() tournament.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *Poller) tick(ctx context.Context) {
	logger := slog.With("tick", uuid.NewString())

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.poll(ctx, logger); err != nil {
		logger.Error("Poll failed", "error", err)
	}
}

// poll runs one check. On any error the stored snapshot is left untouched
// so the next tick sees the same change again.
func (p *Poller) poll(ctx context.Context, logger *slog.Logger) error {
	groups, err := p.backend.Matchups(ctx)
	if err != nil {
		return err
	}

	snapshot := tournament.FromMatchups(groups)
	if snapshot.Equal(p.last) {
		logger.Debug("No schedule change")
		return nil
	}

	logger.Info("Schedule change detected", "previous", p.last.String(), "snapshot", snapshot.String())

	playerInfo, err := p.backend.PlayersInfo(ctx)
	if err != nil {
		return err
	}
	discords, err := p.backend.DiscordNames(ctx)
	if err != nil {
		return err
	}

	messages, err := notify.Compose(ctx, snapshot, playerInfo, discords, p.resolver)
	if err != nil {
		return err
	}

	if err := p.deliver(ctx, messages); err != nil {
		return err
	}

	p.mu.Lock()
	p.last = snapshot
	p.mu.Unlock()
	return nil
}

// deliver publishes the rendered groups as one batch, so a replacing
// announcer swaps out the whole previous announcement at once
func (p *Poller) deliver(ctx context.Context, messages []string) error {
	if p.layout == LayoutSeparate {
		return p.announcer.Publish(ctx, messages...)
	}
	return p.announcer.Publish(ctx, strings.Join(messages, "\n\n"))
}
