package presentation

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/usecases"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

const separatorWidth = 50

// ReportPrinter renders inspection results as human-readable console text.
type ReportPrinter struct {
	w   io.Writer
	err error
}

// NewReportPrinter creates a new ReportPrinter writing to w.
func NewReportPrinter(w io.Writer) *ReportPrinter {
	return &ReportPrinter{w: w}
}

// printf writes a line and remembers the first write error.
func (p *ReportPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// flush returns and clears the first write error since the last flush.
func (p *ReportPrinter) flush() error {
	err := p.err
	p.err = nil
	return err
}

// PrintSession prints the logged-in bot account and how many guilds it sees.
func (p *ReportPrinter) PrintSession(botTag string, guildCount int) error {
	p.printf("🤖 Logged in as %s", botTag)
	p.printf("📡 Servers: %d", guildCount)
	return p.flush()
}

// PrintInspection prints the guild header, the lookup trail, and for a found
// member its roles and privilege flags.
func (p *ReportPrinter) PrintInspection(in *usecases.Inspection) error {
	p.printf("📊 Server: %s", in.Guild.Name)
	p.printf("👥 Members: %d", in.Guild.MemberCount)
	p.printf("🔍 Target user ID: %s", in.RawUserID)
	p.printf("%s", strings.Repeat("-", separatorWidth))

	p.printLookupTrail(in.Outcome)

	if in.Outcome.IsFound() && in.Privileges != nil {
		p.printMember(in.Outcome.Member)
		p.printPrivileges(in.Settings, *in.Privileges)
	}

	return p.flush()
}

func (p *ReportPrinter) printLookupTrail(o *domain.LookupOutcome) {
	if o.Source == domain.SourceCache {
		p.printf("✅ Found in member cache: %s", o.Member.Tag())
		return
	}

	p.printf("⚠️ Not found in member cache")
	p.printf("🔄 Retrying with a remote fetch...")

	switch o.Status {
	case domain.LookupFound:
		p.printf("✅ Found via remote fetch: %s", o.Member.Tag())
	case domain.LookupNotFound:
		p.printf("❌ User does not exist in this server")
	case domain.LookupForbidden:
		p.printf("❌ Missing permissions to read this user")
	case domain.LookupTransientError:
		p.printf("❌ Error: %s", o.Message)
	}
}

func (p *ReportPrinter) printMember(m *domain.Member) {
	p.printf("👤 User: %s", m.Tag())
	p.printf("🏷️ Display name: %s", m.DisplayName)
	p.printf("🆔 User ID: %s", m.UserID)
	p.printf("📅 Joined server: %s", formatJoinedAt(m.JoinedAt))

	if top, ok := m.TopRole(); ok {
		p.printf("🏆 Top role: %s", roleName(top))
	} else {
		p.printf("🏆 Top role: (none)")
	}

	p.printf("📜 Roles:")
	for _, role := range m.Roles {
		p.printf("  - %s (ID: %s)", roleName(role), role.ID)
	}
}

func (p *ReportPrinter) printPrivileges(settings domain.Settings, flags domain.Privileges) {
	p.printf("")
	p.printf("🎯 Premium role ID: %s", settings.PremiumRoleID)
	p.printf("💎 Has premium role: %s", yesNo(flags.Premium))
	p.printf("👑 Server owner: %s", yesNo(flags.GuildOwner))
	p.printf("⚙️ Settings owner: %s", yesNo(flags.ConfigOwner))
}

// PrintError prints a failure that ended the inspection before a lookup outcome existed.
func (p *ReportPrinter) PrintError(err error) error {
	switch {
	case errors.Is(err, usecases.ErrGuildNotFound):
		p.printf("❌ %s", err)
	case errors.Is(err, usecases.ErrInvalidUserID):
		p.printf("❌ Not a valid user ID: %s", err)
	default:
		p.printf("❌ Error: %s", err)
	}
	return p.flush()
}

func yesNo(v bool) string {
	if v {
		return "✅ YES"
	}
	return "❌ NO"
}

func roleName(r domain.Role) string {
	if r.Name == "" {
		return "(unknown role)"
	}
	return r.Name
}

func formatJoinedAt(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}
