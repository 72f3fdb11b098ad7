package member_inspector

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/usecases"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/infrastructure"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/presentation"
)

// Module inspects one member of the community guild and prints a report.
type Module struct {
	inspections *usecases.InspectionService
	printer     *presentation.ReportPrinter
}

// NewModule creates a Module backed by a ready Discord session.
func NewModule(session *discordgo.Session, settings domain.Settings, out io.Writer) *Module {
	return newModule(
		infrastructure.NewDiscordMemberSource(session),
		infrastructure.NewDiscordGuildProvider(session),
		settings,
		out,
	)
}

func newModule(
	members ports.MemberSource,
	guilds ports.GuildProvider,
	settings domain.Settings,
	out io.Writer,
) *Module {
	resolver := usecases.NewMemberResolver(members)
	return &Module{
		inspections: usecases.NewInspectionService(settings, guilds, resolver),
		printer:     presentation.NewReportPrinter(out),
	}
}

// Announce prints the logged-in bot account and its guild count.
func (m *Module) Announce(botTag string, guildCount int) error {
	return m.printer.PrintSession(botTag, guildCount)
}

// Run inspects rawUserID and prints the report.
// Lookup outcomes, a missing guild and an invalid user ID are part of the
// report and do not produce an error. Unexpected failures are printed and returned.
func (m *Module) Run(ctx context.Context, rawUserID string) error {
	inspection, err := m.inspections.Inspect(ctx, rawUserID)
	if err != nil {
		if printErr := m.printer.PrintError(err); printErr != nil {
			return errors.Join(err, printErr)
		}
		if errors.Is(err, usecases.ErrGuildNotFound) || errors.Is(err, usecases.ErrInvalidUserID) {
			slog.Warn("ended inspection early", "user_id", rawUserID, "error", err)
			return nil
		}
		return err
	}

	slog.Info("inspected member",
		"guild_id", inspection.Guild.ID,
		"user_id", rawUserID,
		"status", inspection.Outcome.Status.String(),
		"source", inspection.Outcome.Source.String(),
	)

	return m.printer.PrintInspection(inspection)
}
