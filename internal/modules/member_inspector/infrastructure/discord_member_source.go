package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

// Ensure DiscordMemberSource implements ports.MemberSource.
var _ ports.MemberSource = (*DiscordMemberSource)(nil)

// memberAPI is the subset of *discordgo.Session used for remote member lookups.
type memberAPI interface {
	GuildMember(
		guildID, userID string,
		options ...discordgo.RequestOption,
	) (*discordgo.Member, error)
}

// DiscordMemberSource implements ports.MemberSource using the session state
// cache for local lookups and the REST API for remote fetches.
type DiscordMemberSource struct {
	state *discordgo.State
	api   memberAPI
}

// NewDiscordMemberSource creates a new DiscordMemberSource.
func NewDiscordMemberSource(session *discordgo.Session) *DiscordMemberSource {
	return &DiscordMemberSource{
		state: session.State,
		api:   session,
	}
}

// CachedMember looks the member up in the session state. It never touches the network.
func (s *DiscordMemberSource) CachedMember(
	guildID, userID snowflake.ID,
) (*domain.Member, bool) {
	if s.state == nil {
		return nil, false
	}

	member, err := s.state.Member(guildID.String(), userID.String())
	if err != nil {
		return nil, false
	}

	roles := s.guildRoles(guildID)

	s.state.RLock()
	converted, err := toDomainMember(member, guildID, roles)
	s.state.RUnlock()
	if err != nil {
		slog.Warn("failed to convert cached member",
			"guild_id", guildID,
			"user_id", userID,
			"error", err,
		)
		return nil, false
	}

	return converted, true
}

// FetchMember fetches the member from the REST API.
func (s *DiscordMemberSource) FetchMember(
	ctx context.Context,
	guildID, userID snowflake.ID,
) (*domain.Member, error) {
	member, err := s.api.GuildMember(
		guildID.String(),
		userID.String(),
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, classifyFetchError(err)
	}

	converted, err := toDomainMember(member, guildID, s.guildRoles(guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to convert fetched member: %w", err)
	}

	return converted, nil
}

// guildRoles returns a copy of the cached roles of the guild, or nil if the
// guild is not cached.
func (s *DiscordMemberSource) guildRoles(guildID snowflake.ID) []*discordgo.Role {
	if s.state == nil {
		return nil
	}

	guild, err := s.state.Guild(guildID.String())
	if err != nil {
		return nil
	}

	s.state.RLock()
	defer s.state.RUnlock()
	return slices.Clone(guild.Roles)
}

// classifyFetchError maps REST failures onto the port's sentinel errors.
func classifyFetchError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return fmt.Errorf("failed to fetch guild member: %w", err)
	}

	code := 0
	if restErr.Message != nil {
		code = restErr.Message.Code
	}
	status := 0
	if restErr.Response != nil {
		status = restErr.Response.StatusCode
	}

	switch {
	case code == discordgo.ErrCodeUnknownMember,
		code == discordgo.ErrCodeUnknownUser,
		code == 0 && status == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ports.ErrMemberNotFound, err)
	case code == discordgo.ErrCodeMissingAccess,
		code == discordgo.ErrCodeMissingPermissions,
		code == 0 && status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ports.ErrForbidden, err)
	default:
		return fmt.Errorf("failed to fetch guild member: %w", err)
	}
}
