// Package notify renders the player lists announced in the ping channel.
package notify

//go:generate mockgen -source=render.go -destination=../../mocks/notify.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flor3z/sensei-bot/internal/tournament"
)

// Separator sits between every rendered player
const Separator = " vs "

// ErrMissingPlayer means a scheduled player has no entry in the player directory
var ErrMissingPlayer = errors.New("player missing from player directory")

// MemberResolver looks up a chat member by exact username.
// ok is false when the username is not currently a member of the guild.
type MemberResolver interface {
	ResolveMember(ctx context.Context, username string) (mention string, ok bool, err error)
}

// Template wraps a rendered player list in fixed text
type Template struct {
	Prefix string
	Suffix string
}

var (
	// CurrentTemplate announces the players whose match starts now
	CurrentTemplate = Template{
		Prefix: "Up next are: ",
		Suffix: "\nGET READY! Start the match when I type in CPImagined to begin.",
	}

	// NextTemplate announces the players of the following match
	NextTemplate = Template{
		Prefix: "After this match are: ",
		Suffix: "\nMake sure you get ready for the match and start screensharing. Will ping again when it's time for the battle.",
	}
)

// Message renders ids and wraps them in the template
func (t Template) Message(ctx context.Context, ids []tournament.PlayerID, playerInfo, discords tournament.Directory, resolver MemberResolver) (string, error) {
	players, err := Render(ctx, ids, playerInfo, discords, resolver)
	if err != nil {
		return "", err
	}
	return t.Prefix + players + t.Suffix, nil
}

// Render joins the players as mentions where possible, plain names otherwise.
// Mentions come first, then names, each group keeping input order.
func Render(ctx context.Context, ids []tournament.PlayerID, playerInfo, discords tournament.Directory, resolver MemberResolver) (string, error) {
	var mentions, names []string

	for _, id := range ids {
		name, ok := playerInfo[id]
		if !ok {
			return "", fmt.Errorf("%w: id %d", ErrMissingPlayer, id)
		}

		username, linked := discords[id]
		if !linked {
			names = append(names, name)
			continue
		}

		mention, found, err := resolver.ResolveMember(ctx, username)
		if err != nil {
			return "", fmt.Errorf("failed to resolve member %q: %w", username, err)
		}
		if found {
			mentions = append(mentions, mention)
		} else {
			names = append(names, name)
		}
	}

	groups := make([]string, 0, 2)
	if len(mentions) > 0 {
		groups = append(groups, strings.Join(mentions, Separator))
	}
	if len(names) > 0 {
		groups = append(groups, strings.Join(names, Separator))
	}
	return strings.Join(groups, Separator), nil
}

// Compose renders the current and next announcements for a snapshot, in that order
func Compose(ctx context.Context, s tournament.Snapshot, playerInfo, discords tournament.Directory, resolver MemberResolver) ([]string, error) {
	current, err := CurrentTemplate.Message(ctx, s.Current, playerInfo, discords, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to render current players: %w", err)
	}

	next, err := NextTemplate.Message(ctx, s.Next, playerInfo, discords, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to render next players: %w", err)
	}

	return []string{current, next}, nil
}
