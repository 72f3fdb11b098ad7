package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ErrReadyTimeout is returned when the gateway does not send READY in time.
var ErrReadyTimeout = errors.New("timed out waiting for READY")

// memberRequester asks the gateway to stream a guild's full member list.
type memberRequester func(guildID string) error

// readiness tracks gateway startup. It is ready once READY has arrived, every
// guild listed in it has been delivered by GUILD_CREATE and every large guild
// has finished streaming its members.
type readiness struct {
	mu       sync.Mutex
	gotReady bool
	pending  map[string]struct{}
	received map[string]struct{}
	chunking map[string]struct{}

	requestMembers memberRequester

	readyCh   chan struct{}
	doneCh    chan struct{}
	readyOnce sync.Once
	doneOnce  sync.Once
}

func newReadiness() *readiness {
	return &readiness{
		pending:  make(map[string]struct{}),
		received: make(map[string]struct{}),
		chunking: make(map[string]struct{}),
		readyCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// handleReady is the discordgo handler for READY events.
func (r *readiness) handleReady(_ *discordgo.Session, event *discordgo.Ready) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gotReady = true
	for _, g := range event.Guilds {
		if _, ok := r.received[g.ID]; !ok {
			r.pending[g.ID] = struct{}{}
		}
	}

	r.readyOnce.Do(func() { close(r.readyCh) })
	r.checkDoneLocked()
}

// handleGuildCreate is the discordgo handler for GUILD_CREATE events. Guilds
// whose member list was truncated get a member request.
func (r *readiness) handleGuildCreate(_ *discordgo.Session, event *discordgo.GuildCreate) {
	if event.Guild == nil {
		return
	}

	r.mu.Lock()
	r.received[event.ID] = struct{}{}
	delete(r.pending, event.ID)

	request := r.requestMembers != nil && needsMembers(event.Guild)
	if request {
		r.chunking[event.ID] = struct{}{}
	}
	r.checkDoneLocked()
	r.mu.Unlock()

	if !request {
		return
	}

	if err := r.requestMembers(event.ID); err != nil {
		slog.Warn("failed to request guild members", "guild_id", event.ID, "error", err)

		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.chunking, event.ID)
		r.checkDoneLocked()
	}
}

// handleMembersChunk is the discordgo handler for GUILD_MEMBERS_CHUNK events.
// The state has already cached the chunk's members when it runs.
func (r *readiness) handleMembersChunk(_ *discordgo.Session, event *discordgo.GuildMembersChunk) {
	if event.ChunkIndex < event.ChunkCount-1 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.chunking, event.GuildID)
	r.checkDoneLocked()
}

// needsMembers reports whether GUILD_CREATE left out part of the member list.
func needsMembers(guild *discordgo.Guild) bool {
	return guild.Large || guild.MemberCount > len(guild.Members)
}

func (r *readiness) checkDoneLocked() {
	if r.gotReady && len(r.pending) == 0 && len(r.chunking) == 0 {
		r.doneOnce.Do(func() { close(r.doneCh) })
	}
}

func (r *readiness) pendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func (r *readiness) chunkingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.chunking)
}

// wait blocks until all guilds and member lists arrived, the timeout elapsed
// or ctx ended. If READY arrived but the rest did not, wait logs a warning and
// returns nil.
func (r *readiness) wait(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.doneCh:
		return nil
	case <-r.readyCh:
	case <-timer.C:
		return ErrReadyTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-r.doneCh:
		return nil
	case <-timer.C:
		slog.Warn("proceeded without all guilds",
			"pending_guilds", r.pendingCount(),
			"pending_member_lists", r.chunkingCount(),
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
