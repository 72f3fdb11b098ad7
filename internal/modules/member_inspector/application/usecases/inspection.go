package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

// Inspection is the result of inspecting one member of the community guild.
type Inspection struct {
	Guild     *domain.Guild
	RawUserID string
	Settings  domain.Settings
	Outcome   *domain.LookupOutcome

	// Privileges is nil unless the member was found.
	Privileges *domain.Privileges
}

// InspectionService runs the member diagnostic against the community guild.
type InspectionService struct {
	settings domain.Settings
	guilds   ports.GuildProvider
	resolver *MemberResolver
}

// NewInspectionService creates a new InspectionService.
func NewInspectionService(
	settings domain.Settings,
	guilds ports.GuildProvider,
	resolver *MemberResolver,
) *InspectionService {
	return &InspectionService{
		settings: settings,
		guilds:   guilds,
		resolver: resolver,
	}
}

// Guild returns the community guild snapshot.
// Returns ErrGuildNotFound if the bot cannot see the guild.
func (s *InspectionService) Guild() (*domain.Guild, error) {
	guild, err := s.guilds.Guild(s.settings.CommunityServerID)
	if err != nil {
		if errors.Is(err, ports.ErrGuildNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrGuildNotFound, s.settings.CommunityServerID)
		}
		return nil, fmt.Errorf("failed to read community server: %w", err)
	}
	return guild, nil
}

// Inspect resolves rawUserID in the community guild and derives its privileges.
// Lookup failures are reported through the outcome; only a missing guild and an
// invalid user ID are returned as errors.
func (s *InspectionService) Inspect(ctx context.Context, rawUserID string) (*Inspection, error) {
	guild, err := s.Guild()
	if err != nil {
		return nil, err
	}

	outcome, err := s.resolver.Resolve(ctx, guild.ID, rawUserID)
	if err != nil {
		return nil, err
	}

	inspection := &Inspection{
		Guild:     guild,
		RawUserID: rawUserID,
		Settings:  s.settings,
		Outcome:   outcome,
	}

	if outcome.IsFound() {
		privileges := domain.EvaluatePrivileges(outcome.Member, guild, s.settings, rawUserID)
		inspection.Privileges = &privileges
	}

	return inspection, nil
}
