package infrastructure

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

var errMissingUser = errors.New("member has no user")

// toDomainMember converts a discordgo member into a domain snapshot.
// guildRoles is used to name and order the member's role IDs; roles missing
// from it keep their ID with an empty name.
func toDomainMember(
	member *discordgo.Member,
	guildID snowflake.ID,
	guildRoles []*discordgo.Role,
) (*domain.Member, error) {
	if member.User == nil {
		return nil, errMissingUser
	}

	userID, err := snowflake.Parse(member.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	roles, err := resolveRoles(member.Roles, guildID, guildRoles)
	if err != nil {
		return nil, err
	}

	return &domain.Member{
		UserID:        userID,
		Username:      member.User.Username,
		DisplayName:   getDisplayName(member),
		Discriminator: member.User.Discriminator,
		JoinedAt:      member.JoinedAt,
		Roles:         roles,
	}, nil
}

// resolveRoles returns the member's roles ordered from lowest to highest,
// with @everyone first when the guild's roles are known.
func resolveRoles(
	roleIDs []string,
	guildID snowflake.ID,
	guildRoles []*discordgo.Role,
) ([]domain.Role, error) {
	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}

	roles := make([]domain.Role, 0, len(roleIDs)+1)
	if everyone, ok := byID[guildID.String()]; ok {
		roles = append(roles, domain.Role{
			ID:       guildID,
			Name:     everyone.Name,
			Position: everyone.Position,
		})
	}

	for _, rawID := range roleIDs {
		id, err := snowflake.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse role ID: %w", err)
		}
		if id == guildID {
			continue
		}

		role := domain.Role{ID: id}
		if r, ok := byID[rawID]; ok {
			role.Name = r.Name
			role.Position = r.Position
		}
		roles = append(roles, role)
	}

	// Same ordering as the Discord client: position, then ID for ties.
	slices.SortStableFunc(roles, func(a, b domain.Role) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		if a.ID == guildID {
			return -1
		}
		if b.ID == guildID {
			return 1
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return roles, nil
}

// getDisplayName returns the effective display name for a guild member.
// Priority: guild nickname > global display name > username.
func getDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// toDomainGuild converts a cached discordgo guild into a domain snapshot.
func toDomainGuild(guild *discordgo.Guild) (*domain.Guild, error) {
	id, err := snowflake.Parse(guild.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID: %w", err)
	}

	var ownerID snowflake.ID
	if guild.OwnerID != "" {
		ownerID, err = snowflake.Parse(guild.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse owner ID: %w", err)
		}
	}

	return &domain.Guild{
		ID:          id,
		Name:        guild.Name,
		MemberCount: guild.MemberCount,
		OwnerID:     ownerID,
	}, nil
}
