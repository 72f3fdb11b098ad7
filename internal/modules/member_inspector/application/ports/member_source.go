package ports

import (
	"context"
	"errors"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

var (
	// ErrMemberNotFound is returned by MemberFetcher when the user is not a member of the guild.
	ErrMemberNotFound = errors.New("member not found")

	// ErrForbidden is returned by MemberFetcher when the bot may not read the member.
	ErrForbidden = errors.New("missing permission to read member")
)

// MemberCache looks members up in the local session cache.
type MemberCache interface {
	// CachedMember returns the cached member, or false on a cache miss.
	// Implementations must not perform network I/O.
	CachedMember(guildID, userID snowflake.ID) (*domain.Member, bool)
}

// MemberFetcher fetches members from the remote API.
type MemberFetcher interface {
	// FetchMember performs one remote lookup.
	// Returns ErrMemberNotFound or ErrForbidden (possibly wrapped) for those responses.
	FetchMember(ctx context.Context, guildID, userID snowflake.ID) (*domain.Member, error)
}

// MemberSource combines the local and remote lookup tiers.
type MemberSource interface {
	MemberCache
	MemberFetcher
}
