package domain

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func premiumMember(userID uint64) *Member {
	return &Member{
		UserID: snowflake.ID(userID),
		Roles: []Role{
			{ID: 5, Name: "A"},
			{ID: 42, Name: "Premium"},
		},
	}
}

func TestHasPremiumRole(t *testing.T) {
	tests := []struct {
		name          string
		premiumRoleID uint64
		want          bool
	}{
		{name: "member holds premium role", premiumRoleID: 42, want: true},
		{name: "member lacks premium role", premiumRoleID: 99, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Settings{PremiumRoleID: snowflake.ID(tt.premiumRoleID)}
			assert.Equal(t, tt.want, HasPremiumRole(premiumMember(7), settings))
		})
	}
}

func TestIsConfigOwner(t *testing.T) {
	tests := []struct {
		name      string
		owner     string
		rawUserID string
		want      bool
	}{
		{name: "matching text", owner: "7", rawUserID: "7", want: true},
		{name: "different user", owner: "8", rawUserID: "7", want: false},
		{name: "no owner declared", owner: "", rawUserID: "7", want: false},
		{name: "leading zeros differ textually", owner: "007", rawUserID: "7", want: false},
		{name: "leading zeros on input differ textually", owner: "7", rawUserID: "007", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Settings{OwnerUserID: tt.owner}
			assert.Equal(t, tt.want, IsConfigOwner(settings, tt.rawUserID))
		})
	}
}

func TestEvaluatePrivileges_OwnershipFlagsAreIndependent(t *testing.T) {
	tests := []struct {
		name            string
		guildOwnerID    uint64
		configOwner     string
		wantGuildOwner  bool
		wantConfigOwner bool
	}{
		{
			name:            "neither owner",
			guildOwnerID:    999,
			configOwner:     "",
			wantGuildOwner:  false,
			wantConfigOwner: false,
		},
		{
			name:            "guild owner only",
			guildOwnerID:    7,
			configOwner:     "8",
			wantGuildOwner:  true,
			wantConfigOwner: false,
		},
		{
			name:            "config owner only",
			guildOwnerID:    999,
			configOwner:     "7",
			wantGuildOwner:  false,
			wantConfigOwner: true,
		},
		{
			name:            "both owners",
			guildOwnerID:    7,
			configOwner:     "7",
			wantGuildOwner:  true,
			wantConfigOwner: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guild := &Guild{ID: 100, OwnerID: snowflake.ID(tt.guildOwnerID)}
			settings := Settings{
				CommunityServerID: 100,
				PremiumRoleID:     42,
				OwnerUserID:       tt.configOwner,
			}

			got := EvaluatePrivileges(premiumMember(7), guild, settings, "7")

			assert.True(t, got.Premium)
			assert.Equal(t, tt.wantGuildOwner, got.GuildOwner)
			assert.Equal(t, tt.wantConfigOwner, got.ConfigOwner)
		})
	}
}
