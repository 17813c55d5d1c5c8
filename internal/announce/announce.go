// Package announce manages the announcement message posted to the ping channel.
package announce

//go:generate mockgen -source=announce.go -destination=../../mocks/announce.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Mode selects how successive announcements are posted
type Mode string

const (
	// ModeReplace deletes the previous announcement before posting a new one
	ModeReplace Mode = "replace"
	// ModeAppend only posts, older announcements stay in the channel
	ModeAppend Mode = "append"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReplace, ModeAppend:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown announce mode %q (want %q or %q)", s, ModeReplace, ModeAppend)
	}
}

// Channel is the chat channel announcements are posted to
type Channel interface {
	// Send posts content and returns the new message ID
	Send(ctx context.Context, content string) (string, error)

	// Delete removes a previously posted message
	Delete(ctx context.Context, messageID string) error
}

// Announcer publishes the latest ping. The messages of one call form a
// batch that together make up a single announcement.
type Announcer interface {
	Publish(ctx context.Context, messages ...string) error
}

// New creates the announcer for mode
func New(mode Mode, channel Channel) (Announcer, error) {
	switch mode {
	case ModeReplace:
		return NewReplacer(channel), nil
	case ModeAppend:
		return NewAppender(channel), nil
	default:
		return nil, fmt.Errorf("unknown announce mode %q", mode)
	}
}

// Replacer keeps a single live announcement batch in the channel
type Replacer struct {
	channel Channel
	lastIDs []string
}

// NewReplacer creates a Replacer with no announcement posted yet
func NewReplacer(channel Channel) *Replacer {
	return &Replacer{channel: channel}
}

// Publish deletes every message of the previous batch and posts messages
// as the new batch. A failed delete is logged and does not stop the post.
// If a post fails the previous batch stays tracked, together with any
// messages of this batch already posted, so all of them are deleted on
// the next publish.
func (r *Replacer) Publish(ctx context.Context, messages ...string) error {
	if len(messages) == 0 {
		return nil
	}

	for _, id := range r.lastIDs {
		if err := r.channel.Delete(ctx, id); err != nil {
			slog.Warn("Failed to delete previous announcement", "messageID", id, "error", err)
		}
	}

	posted := make([]string, 0, len(messages))
	for _, msg := range messages {
		id, err := r.channel.Send(ctx, msg)
		if err != nil {
			r.lastIDs = append(slices.Clone(r.lastIDs), posted...)
			return fmt.Errorf("failed to post announcement: %w", err)
		}
		posted = append(posted, id)
	}

	slog.Info("Posted announcement", "messageIDs", posted, "replaced", r.lastIDs)
	r.lastIDs = posted
	return nil
}

// LastMessageIDs returns the IDs of the live announcement batch, empty if none was posted
func (r *Replacer) LastMessageIDs() []string {
	return slices.Clone(r.lastIDs)
}

// Appender posts every announcement as new messages
type Appender struct {
	channel Channel
}

// NewAppender creates an Appender
func NewAppender(channel Channel) *Appender {
	return &Appender{channel: channel}
}

// Publish posts messages in order
func (a *Appender) Publish(ctx context.Context, messages ...string) error {
	for _, msg := range messages {
		id, err := a.channel.Send(ctx, msg)
		if err != nil {
			return fmt.Errorf("failed to post announcement: %w", err)
		}
		slog.Info("Posted announcement", "messageID", id)
	}
	return nil
}
