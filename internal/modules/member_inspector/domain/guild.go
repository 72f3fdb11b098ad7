package domain

import "github.com/disgoorg/snowflake/v2"

// Guild is a read-only snapshot of a guild taken from the session cache.
type Guild struct {
	ID          snowflake.ID
	Name        string
	MemberCount int
	OwnerID     snowflake.ID
}

// IsOwnedBy reports whether the given user owns the guild.
func (g *Guild) IsOwnedBy(userID snowflake.ID) bool {
	return g.OwnerID != 0 && g.OwnerID == userID
}
