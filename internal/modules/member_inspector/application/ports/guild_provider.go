package ports

import (
	"errors"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

// ErrGuildNotFound is returned when the guild is not present in the session cache.
var ErrGuildNotFound = errors.New("guild not found")

// GuildProvider defines the interface for reading guild snapshots.
type GuildProvider interface {
	// Guild returns the cached guild, or ErrGuildNotFound.
	Guild(guildID snowflake.ID) (*domain.Guild, error)
}
