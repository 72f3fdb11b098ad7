package domain

// Privileges are the privilege flags derived for a resolved member.
// GuildOwner and ConfigOwner are independent and may disagree.
type Privileges struct {
	Premium     bool
	GuildOwner  bool
	ConfigOwner bool
}

// EvaluatePrivileges derives the privilege flags of a member.
// rawUserID is the identifier exactly as the operator supplied it.
func EvaluatePrivileges(
	member *Member,
	guild *Guild,
	settings Settings,
	rawUserID string,
) Privileges {
	return Privileges{
		Premium:     HasPremiumRole(member, settings),
		GuildOwner:  guild.IsOwnedBy(member.UserID),
		ConfigOwner: IsConfigOwner(settings, rawUserID),
	}
}

// HasPremiumRole reports whether the member holds the configured premium role.
func HasPremiumRole(member *Member, settings Settings) bool {
	return member.HasRole(settings.PremiumRoleID)
}

// IsConfigOwner reports whether the settings declare rawUserID as owner.
// The comparison is textual: "007" and "7" are different owners.
func IsConfigOwner(settings Settings, rawUserID string) bool {
	return settings.OwnerUserID != "" && settings.OwnerUserID == rawUserID
}
