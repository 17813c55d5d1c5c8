// Package discord adapts a discordgo session to the announcement channel
// and member lookups used by the poller.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const memberSearchLimit = 1000

// Gateway posts to one channel and resolves members of one guild
type Gateway struct {
	session   *discordgo.Session
	channelID string
	guildID   string
}

// NewGateway creates a Gateway for the given channel and guild
func NewGateway(session *discordgo.Session, channelID, guildID string) *Gateway {
	return &Gateway{
		session:   session,
		channelID: channelID,
		guildID:   guildID,
	}
}

// Send posts content to the announcement channel
func (g *Gateway) Send(ctx context.Context, content string) (string, error) {
	msg, err := g.session.ChannelMessageSend(g.channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return msg.ID, nil
}

// Delete removes a message from the announcement channel
func (g *Gateway) Delete(ctx context.Context, messageID string) error {
	if err := g.session.ChannelMessageDelete(g.channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	return nil
}

// RequestMembers asks the gateway to stream the guild member list into the state cache
func (g *Gateway) RequestMembers() error {
	if err := g.session.RequestGuildMembers(g.guildID, "", 0, "", false); err != nil {
		return fmt.Errorf("failed to request guild members: %w", err)
	}
	return nil
}

// ResolveMember finds a guild member whose username is exactly username.
// The state cache is checked first, then the member search endpoint.
// Matching is by username only, so a rename or collision resolves wrongly.
func (g *Gateway) ResolveMember(ctx context.Context, username string) (string, bool, error) {
	if m := g.cachedMember(username); m != nil {
		return m.User.Mention(), true, nil
	}

	members, err := g.session.GuildMembersSearch(g.guildID, username, memberSearchLimit, discordgo.WithContext(ctx))
	if err != nil {
		return "", false, fmt.Errorf("failed to search guild members: %w", err)
	}
	if m := findMember(members, username); m != nil {
		return m.User.Mention(), true, nil
	}
	return "", false, nil
}

func (g *Gateway) cachedMember(username string) *discordgo.Member {
	if g.session.State == nil {
		return nil
	}

	// ErrStateNotFound until the guild create event arrives
	guild, err := g.session.State.Guild(g.guildID)
	if err != nil {
		return nil
	}

	g.session.State.RLock()
	defer g.session.State.RUnlock()
	return findMember(guild.Members, username)
}

// findMember returns the member whose username matches exactly, or nil
func findMember(members []*discordgo.Member, username string) *discordgo.Member {
	for _, m := range members {
		if m != nil && m.User != nil && m.User.Username == username {
			return m
		}
	}
	return nil
}
