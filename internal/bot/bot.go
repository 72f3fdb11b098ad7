package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot manages the Discord session lifecycle for a single diagnostic run.
type Bot struct {
	config  *Config
	session *discordgo.Session
	ready   *readiness
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config: cfg,
		ready:  newReadiness(),
	}
}

// Start connects to Discord and blocks until the session cache is populated.
func (b *Bot) Start(ctx context.Context) error {
	session, err := newSession(b.config.DiscordToken)
	if err != nil {
		return err
	}
	b.session = session

	// Register readiness handlers
	b.ready.requestMembers = func(guildID string) error {
		return session.RequestGuildMembers(guildID, "", 0, "", false)
	}
	b.session.AddHandler(b.ready.handleReady)
	b.session.AddHandler(b.ready.handleGuildCreate)
	b.session.AddHandler(b.ready.handleMembersChunk)

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.ready.wait(ctx, b.config.ReadyTimeout); err != nil {
		if closeErr := b.session.Close(); closeErr != nil {
			slog.Warn("failed to close Discord session", "error", closeErr)
		}
		return fmt.Errorf("failed to wait for Discord session: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"guilds", b.GuildCount(),
	)

	return nil
}

// newSession creates an unopened session. Each REST call is sent at most
// once so a member lookup is a single request on the wire.
func newSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	session.MaxRestRetries = 0
	session.ShouldRetryOnRateLimit = false

	return session, nil
}

// Stop closes the Discord session. It is safe to call if Start was never called.
func (b *Bot) Stop() error {
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// Session returns the underlying Discord session, or nil before Start.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// UserTag returns the bot account's tag, or an empty string if not logged in.
func (b *Bot) UserTag() string {
	if b.session == nil || b.session.State == nil || b.session.State.User == nil {
		return ""
	}

	user := b.session.State.User
	if user.Discriminator == "" || user.Discriminator == "0" {
		return user.Username
	}
	return user.Username + "#" + user.Discriminator
}

// GuildCount returns how many guilds the session cache holds.
func (b *Bot) GuildCount() int {
	if b.session == nil || b.session.State == nil {
		return 0
	}

	b.session.State.RLock()
	defer b.session.State.RUnlock()
	return len(b.session.State.Guilds)
}
