package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/config"
	"github.com/abhisek/statpick/internal/logging"
)

// runtime holds what every subcommand needs once flags are parsed.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
}

var rt runtime

var rootCmd = &cobra.Command{
	Use:           "statpick",
	Short:         "Pick a statistical test",
	Long:          "statpick asks a few questions about your data and recommends a classical statistical test.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt.logger != nil {
			_ = rt.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted. The first interrupt cancels the command context; a second
// one gets the default handling and ends the process.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides STATPICK_CONFIG env var)")
	rootCmd.PersistentFlags().String("locale", "", "Language for questions and test descriptions (en, es)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the config from file, environment and flags (in rising
// priority), then builds the logger and loads the catalog.
func setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	cat, err := catalog.Load(cfg.LocaleTag())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	rt = runtime{cfg: cfg, logger: logger, catalog: cat}
	logger.Debug("statpick starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("locale", cfg.Locale),
	)
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.Getenv)

	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		cfg.Locale = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
