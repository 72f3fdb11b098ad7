package domain

import "github.com/disgoorg/snowflake/v2"

// Settings holds the validated guild settings the inspection runs against.
type Settings struct {
	CommunityServerID snowflake.ID
	PremiumRoleID     snowflake.ID

	// OwnerUserID is kept as written in the settings document.
	// Empty means no owner is declared.
	OwnerUserID string
}
