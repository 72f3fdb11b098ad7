package infrastructure

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

// Ensure DiscordGuildProvider implements ports.GuildProvider.
var _ ports.GuildProvider = (*DiscordGuildProvider)(nil)

// DiscordGuildProvider reads guild snapshots from the session state.
type DiscordGuildProvider struct {
	state *discordgo.State
}

// NewDiscordGuildProvider creates a new DiscordGuildProvider.
func NewDiscordGuildProvider(session *discordgo.Session) *DiscordGuildProvider {
	return &DiscordGuildProvider{state: session.State}
}

// Guild returns the cached guild. Unavailable guilds count as not found.
func (p *DiscordGuildProvider) Guild(guildID snowflake.ID) (*domain.Guild, error) {
	if p.state == nil {
		return nil, ports.ErrGuildNotFound
	}

	guild, err := p.state.Guild(guildID.String())
	if err != nil {
		if errors.Is(err, discordgo.ErrStateNotFound) {
			return nil, ports.ErrGuildNotFound
		}
		return nil, fmt.Errorf("failed to read guild from state: %w", err)
	}

	p.state.RLock()
	defer p.state.RUnlock()

	if guild.Unavailable {
		return nil, ports.ErrGuildNotFound
	}
	return toDomainGuild(guild)
}
