package bot

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken string `env:"DISCORD_BOT_TOKEN,notEmpty"`

	// ReadyTimeout bounds how long Start waits for the gateway to deliver
	// READY and the guilds it lists.
	ReadyTimeout time.Duration `env:"READY_TIMEOUT" envDefault:"30s"`

	SentryDSN string `env:"SENTRY_DSN"`
	Release   string `env:"RELEASE"`
}

// LoadConfig loads configuration from environment variables.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
