package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sglre6355/roleprobe/internal/bot"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector"
	"github.com/sglre6355/roleprobe/internal/reporting"
	"github.com/urfave/cli/v2"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/roleprobe
var version = "dev"

func main() {
	// Configure JSON logging; stdout is reserved for the report
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := newApp(run).Run(os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

// newApp builds the command line. The member and settings flags only reflect
// the command line; their environment fallbacks are read by flagOrEnv once
// the dotenv file has been loaded.
func newApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:    "roleprobe",
		Usage:   "print a guild member's roles and privilege status",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "settings",
				Usage: "path to the settings document (JSON or YAML) [$SETTINGS_PATH]",
			},
			&cli.StringFlag{
				Name:  "user-id",
				Usage: "ID of the member to inspect [$TARGET_USER_ID]",
			},
		},
		Before: loadEnvFile,
		Action: action,
	}
}

// loadEnvFile applies the dotenv file on top of the process environment.
func loadEnvFile(c *cli.Context) error {
	if err := godotenv.Overload(c.String("env-file")); err != nil {
		slog.Warn("failed to load dotenv file", "path", c.String("env-file"), "error", err)
	}
	return nil
}

func run(c *cli.Context) error {
	// Load configuration
	cfg, err := bot.LoadConfig()
	if err != nil {
		fmt.Fprintf(c.App.Writer, "❌ Invalid configuration: %v\n", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	userID := flagOrEnv(c, "user-id", "TARGET_USER_ID", "")
	if userID == "" {
		return cli.Exit("a user ID is required (--user-id or TARGET_USER_ID)", 1)
	}

	settingsPath := flagOrEnv(c, "settings", "SETTINGS_PATH", member_inspector.DefaultSettingsPath)
	settings, err := member_inspector.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := reporting.Init(cfg.SentryDSN, cfg.Release); err != nil {
		slog.Warn("failed to initialize error reporting", "error", err)
	}
	defer reporting.Flush()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bot.NewBot(cfg)
	if err := b.Start(ctx); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	defer func() {
		if err := b.Stop(); err != nil {
			slog.Error("failed to shutdown", "error", err)
		}
		slog.Info("completed bot shutdown")
	}()

	module := member_inspector.NewModule(b.Session(), settings, c.App.Writer)
	return inspect(ctx, b, module, userID)
}

// flagOrEnv prefers a flag given on the command line, then the environment
// as it is after the dotenv file was loaded, then fallback.
func flagOrEnv(c *cli.Context, flag, key, fallback string) string {
	if c.IsSet(flag) {
		return c.String(flag)
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// inspect runs the diagnostic once. Panics are dumped with their stack trace
// and reported so the session still gets closed by the caller.
func inspect(
	ctx context.Context,
	b *bot.Bot,
	module *member_inspector.Module,
	userID string,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = reporting.HandlePanic(os.Stderr, r)
		}
	}()

	reporting.SetContext("inspection", map[string]any{"user_id": userID})

	if err := module.Announce(b.UserTag(), b.GuildCount()); err != nil {
		return fmt.Errorf("failed to print session: %w", err)
	}

	if err := module.Run(ctx, userID); err != nil {
		reporting.ReportError(err)
		return fmt.Errorf("failed to inspect member: %w", err)
	}

	return nil
}
