package usecases

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
)

func mockMember(userID snowflake.ID, roles ...domain.Role) *domain.Member {
	return &domain.Member{
		UserID:        userID,
		Username:      "user" + userID.String(),
		DisplayName:   "User " + userID.String(),
		Discriminator: "0",
		JoinedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Roles:         roles,
	}
}

type memberKey struct {
	guildID snowflake.ID
	userID  snowflake.ID
}

// mockMemberSource holds separate local and remote member sets and counts calls.
type mockMemberSource struct {
	cached   map[memberKey]*domain.Member
	remote   map[memberKey]*domain.Member
	fetchErr error

	cacheCalls int
	fetchCalls int
}

func newMockMemberSource() *mockMemberSource {
	return &mockMemberSource{
		cached: make(map[memberKey]*domain.Member),
		remote: make(map[memberKey]*domain.Member),
	}
}

func (m *mockMemberSource) addCached(guildID snowflake.ID, member *domain.Member) {
	m.cached[memberKey{guildID, member.UserID}] = member
}

func (m *mockMemberSource) addRemote(guildID snowflake.ID, member *domain.Member) {
	m.remote[memberKey{guildID, member.UserID}] = member
}

func (m *mockMemberSource) CachedMember(guildID, userID snowflake.ID) (*domain.Member, bool) {
	m.cacheCalls++
	member, ok := m.cached[memberKey{guildID, userID}]
	return member, ok
}

func (m *mockMemberSource) FetchMember(
	_ context.Context,
	guildID, userID snowflake.ID,
) (*domain.Member, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	member, ok := m.remote[memberKey{guildID, userID}]
	if !ok {
		return nil, ports.ErrMemberNotFound
	}
	return member, nil
}

type mockGuildProvider struct {
	guilds map[snowflake.ID]*domain.Guild
	err    error
}

func newMockGuildProvider(guilds ...*domain.Guild) *mockGuildProvider {
	m := &mockGuildProvider{guilds: make(map[snowflake.ID]*domain.Guild)}
	for _, g := range guilds {
		m.guilds[g.ID] = g
	}
	return m
}

func (m *mockGuildProvider) Guild(guildID snowflake.ID) (*domain.Guild, error) {
	if m.err != nil {
		return nil, m.err
	}
	guild, ok := m.guilds[guildID]
	if !ok {
		return nil, ports.ErrGuildNotFound
	}
	return guild, nil
}
