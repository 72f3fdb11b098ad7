package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

// MemberResolver resolves user IDs to guild members with a cache-then-fetch lookup.
type MemberResolver struct {
	source ports.MemberSource
}

// NewMemberResolver creates a new MemberResolver.
func NewMemberResolver(source ports.MemberSource) *MemberResolver {
	return &MemberResolver{source: source}
}

// ParseUserID parses a user identifier given as text.
// The identifier must be a positive base-10 integer.
func ParseUserID(raw string) (snowflake.ID, error) {
	id, err := snowflake.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	if id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// Resolve parses rawUserID and resolves it within the guild.
// Returns ErrInvalidUserID without touching the cache or network if parsing fails.
func (r *MemberResolver) Resolve(
	ctx context.Context,
	guildID snowflake.ID,
	rawUserID string,
) (*domain.LookupOutcome, error) {
	userID, err := ParseUserID(rawUserID)
	if err != nil {
		return nil, err
	}
	return r.ResolveID(ctx, guildID, userID)
}

// ResolveID resolves an already parsed user ID within the guild.
// The cache is consulted first; on a miss exactly one remote fetch is made.
func (r *MemberResolver) ResolveID(
	ctx context.Context,
	guildID, userID snowflake.ID,
) (*domain.LookupOutcome, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserID, userID)
	}

	if member, ok := r.source.CachedMember(guildID, userID); ok {
		return domain.Found(member, domain.SourceCache), nil
	}

	slog.Debug("missed member cache, fetching from remote",
		"guild_id", guildID,
		"user_id", userID,
	)

	member, err := r.source.FetchMember(ctx, guildID, userID)
	switch {
	case err == nil && member != nil:
		return domain.Found(member, domain.SourceRemote), nil
	case err == nil:
		return domain.NotFound(), nil
	case errors.Is(err, ports.ErrMemberNotFound):
		return domain.NotFound(), nil
	case errors.Is(err, ports.ErrForbidden):
		return domain.Forbidden(), nil
	default:
		slog.Warn("failed to fetch member",
			"guild_id", guildID,
			"user_id", userID,
			"error", err,
		)
		return domain.TransientError(err.Error()), nil
	}
}
