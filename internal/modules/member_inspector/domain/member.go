package domain

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Member is a read-only snapshot of a user's membership in a guild.
type Member struct {
	UserID        snowflake.ID
	Username      string
	DisplayName   string
	Discriminator string
	JoinedAt      time.Time

	// Roles are ordered from lowest to highest in the role hierarchy.
	// The first entry is @everyone when the guild's roles are known.
	Roles []Role
}

// Tag returns the user's tag as shown by Discord clients.
// Accounts migrated to unique usernames have discriminator "0" and no tag suffix.
func (m *Member) Tag() string {
	if m.Discriminator == "" || m.Discriminator == "0" {
		return m.Username
	}
	return m.Username + "#" + m.Discriminator
}

// TopRole returns the highest role the member holds.
// Returns false if the member has no roles at all.
func (m *Member) TopRole() (Role, bool) {
	if len(m.Roles) == 0 {
		return Role{}, false
	}
	return m.Roles[len(m.Roles)-1], true
}

// HasRole reports whether the member holds the role with the given ID.
func (m *Member) HasRole(roleID snowflake.ID) bool {
	for _, role := range m.Roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}
