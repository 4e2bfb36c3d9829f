package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmynk/members/internal/config"
	"github.com/mmynk/members/internal/middleware"
	"github.com/mmynk/members/internal/service"
	"github.com/mmynk/members/internal/storage/sqlite"
	"github.com/mmynk/members/internal/ui"
	"github.com/mmynk/members/pkg/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds the command-line flags. Empty values leave the
// configured setting alone.
type rootOptions struct {
	configPath string
	dbPath     string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "members",
		Short:         "Member Management System",
		Long:          "A terminal form for keeping a roster of members and their contact numbers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "database file (overrides config)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "members %s\n", version)
		},
	}
}

// loadConfig merges the config file, environment and flags.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the roster database with the configured search options.
func openStore(cfg config.Config) (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(cfg.DBPath, sqlite.WithSearchOptions(cfg.SearchOptions()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}

// setupLogging sends logs to the configured file, or to stderr when LogFile
// is empty or "-". The returned function releases the log file.
func setupLogging(cfg config.Config) (func() error, error) {
	if cfg.LogToStderr() {
		logging.SetupWithLevel(cfg.Level())
		return func() error { return nil }, nil
	}
	return logging.SetupFile(cfg.LogFile, cfg.Level())
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath, "search_mode", cfg.Search.Mode)

	roster := middleware.Logging(service.NewMemberService(store), nil)
	model := ui.New(roster, ui.WithContext(ctx))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("UI failed", "error", err)
		return fmt.Errorf("ui failed: %w", err)
	}

	slog.Info("Session ended")
	return nil
}
