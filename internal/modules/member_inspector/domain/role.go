package domain

import "github.com/disgoorg/snowflake/v2"

// Role is a guild role held by a member.
type Role struct {
	ID       snowflake.ID
	Name     string
	Position int
}

// IsEveryone reports whether the role is the implicit @everyone role of the guild.
// Discord gives @everyone the same ID as the guild itself.
func (r Role) IsEveryone(guildID snowflake.ID) bool {
	return r.ID == guildID
}
