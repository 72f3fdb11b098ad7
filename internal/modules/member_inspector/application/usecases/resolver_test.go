package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/application/ports"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildID = snowflake.ID(100)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    snowflake.ID
		wantErr bool
	}{
		{name: "snowflake", raw: "960439757345804308", want: 960439757345804308},
		{name: "small id", raw: "7", want: 7},
		{name: "leading zeros", raw: "007", want: 7},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-7", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "surrounding spaces", raw: " 7 ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemberResolver_Resolve_CacheHitSkipsFetch(t *testing.T) {
	source := newMockMemberSource()
	member := mockMember(7)
	source.addCached(testGuildID, member)
	source.addRemote(testGuildID, mockMember(7))

	resolver := NewMemberResolver(source)

	outcome, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupFound, outcome.Status)
	assert.Equal(t, domain.SourceCache, outcome.Source)
	assert.Same(t, member, outcome.Member)
	assert.Equal(t, 0, source.fetchCalls)
}

func TestMemberResolver_Resolve_CacheMissFetchesOnce(t *testing.T) {
	source := newMockMemberSource()
	member := mockMember(7)
	source.addRemote(testGuildID, member)

	resolver := NewMemberResolver(source)

	outcome, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupFound, outcome.Status)
	assert.Equal(t, domain.SourceRemote, outcome.Source)
	assert.True(t, outcome.CacheMiss)
	assert.Same(t, member, outcome.Member)
	assert.Equal(t, 1, source.cacheCalls)
	assert.Equal(t, 1, source.fetchCalls)
}

func TestMemberResolver_Resolve_AbsentEverywhere(t *testing.T) {
	source := newMockMemberSource()
	resolver := NewMemberResolver(source)

	outcome, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupNotFound, outcome.Status)
	assert.Nil(t, outcome.Member)
	assert.Equal(t, 1, source.fetchCalls)
}

func TestMemberResolver_Resolve_OtherGuildIsNotConsulted(t *testing.T) {
	source := newMockMemberSource()
	source.addCached(snowflake.ID(200), mockMember(7))
	resolver := NewMemberResolver(source)

	outcome, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)

	assert.Equal(t, domain.LookupNotFound, outcome.Status)
	assert.Equal(t, 1, source.fetchCalls)
}

func TestMemberResolver_Resolve_FetchErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		fetchErr    error
		wantStatus  domain.LookupStatus
		wantMessage string
	}{
		{
			name:       "not found",
			fetchErr:   ports.ErrMemberNotFound,
			wantStatus: domain.LookupNotFound,
		},
		{
			name:       "wrapped not found",
			fetchErr:   fmt.Errorf("failed to fetch guild member: %w", ports.ErrMemberNotFound),
			wantStatus: domain.LookupNotFound,
		},
		{
			name:       "forbidden",
			fetchErr:   fmt.Errorf("failed to fetch guild member: %w", ports.ErrForbidden),
			wantStatus: domain.LookupForbidden,
		},
		{
			name:        "other error",
			fetchErr:    errors.New("HTTP 502 Bad Gateway"),
			wantStatus:  domain.LookupTransientError,
			wantMessage: "HTTP 502 Bad Gateway",
		},
		{
			name:        "context cancelled",
			fetchErr:    context.Canceled,
			wantStatus:  domain.LookupTransientError,
			wantMessage: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newMockMemberSource()
			source.fetchErr = tt.fetchErr
			resolver := NewMemberResolver(source)

			outcome, err := resolver.Resolve(context.Background(), testGuildID, "7")
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantMessage, outcome.Message)
			assert.Nil(t, outcome.Member)
			assert.Equal(t, 1, source.fetchCalls, "no retry after a failed fetch")
		})
	}
}

func TestMemberResolver_Resolve_InvalidIDSkipsLookup(t *testing.T) {
	source := newMockMemberSource()
	resolver := NewMemberResolver(source)

	outcome, err := resolver.Resolve(context.Background(), testGuildID, "not-an-id")

	require.ErrorIs(t, err, ErrInvalidUserID)
	assert.Nil(t, outcome)
	assert.Equal(t, 0, source.cacheCalls)
	assert.Equal(t, 0, source.fetchCalls)
}

func TestMemberResolver_ResolveID_ZeroIsInvalid(t *testing.T) {
	source := newMockMemberSource()
	resolver := NewMemberResolver(source)

	_, err := resolver.ResolveID(context.Background(), testGuildID, 0)

	require.ErrorIs(t, err, ErrInvalidUserID)
	assert.Equal(t, 0, source.cacheCalls)
}

func TestMemberResolver_Resolve_IsIdempotent(t *testing.T) {
	source := newMockMemberSource()
	source.addRemote(testGuildID, mockMember(7, domain.Role{ID: 42, Name: "VIP"}))
	resolver := NewMemberResolver(source)

	first, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), testGuildID, "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, source.fetchCalls, "resolver does not populate the cache")
}
