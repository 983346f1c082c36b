package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"chargekit/ocpicheck/pkg/cli"
	"chargekit/ocpicheck/pkg/config"
	"chargekit/ocpicheck/pkg/history"
	"chargekit/ocpicheck/pkg/ocpi"
	"chargekit/ocpicheck/pkg/server"
	"chargekit/ocpicheck/pkg/telemetry/logging"
	"chargekit/ocpicheck/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation HTTP API",
	Long: `Start the validation HTTP API.

The server accepts OCPI payloads on POST /v1/validate/{type} and returns
the validation result as JSON. When the history store is enabled,
results are recorded and queryable via GET /v1/history.

Examples:
  # Start with default config
  ocpicheck serve

  # Start with custom config
  ocpicheck serve --config /etc/ocpicheck/config.yaml

  # Override listen address
  ocpicheck serve --listen 0.0.0.0:8180

  # Validate config without starting the server
  ocpicheck serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.LogLevel = serveFlags.logLevel
	}

	logger, err := logging.Init(logging.Config{
		Level:  cfg.Telemetry.LogLevel,
		Format: cfg.Telemetry.LogFormat,
	})
	if err != nil {
		return cli.NewConfigError("telemetry", err.Error())
	}

	if serveFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("ocpicheck v%s\n", Version)
	fmt.Println("✓ Configuration loaded")

	var collector *metrics.Collector
	if cfg.Telemetry.MetricsEnabled {
		collector = metrics.NewCollector(nil)
	}

	var store history.Store
	if cfg.History.Enabled {
		store, err = openHistoryStore(cfg)
		if err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to open history store: %w", err))
		}
		defer store.Close()

		if cfg.History.RetentionDays > 0 {
			pruner, err := history.NewPruner(store, cfg.History.RetentionDays, cfg.History.PruneSchedule, logger)
			if err != nil {
				return cli.NewCommandError("serve", fmt.Errorf("failed to create retention pruner: %w", err))
			}
			pruner.Start()
			defer pruner.Stop()
		}

		fmt.Println("✓ History store initialized")
	}

	srv := server.New(server.Options{
		Config:    &cfg.Server,
		Validator: ocpi.NewValidator(profileOptions(cfg)...),
		Store:     store,
		Collector: collector,
		Logger:    logger,
	})

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if collector != nil {
		fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", cfg.Server.ListenAddress)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(cmd.Context()); err != nil {
		return cli.NewCommandError("serve", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

// loadConfiguration loads the config file named by --config. A missing
// file is only tolerated for the default path, in which case built-in
// defaults are used.
func loadConfiguration() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if errors.Is(err, os.ErrNotExist) && cfgFile == "config.yaml" {
			cfg := config.DefaultConfig()
			config.SetConfig(cfg)
			return cfg, nil
		}
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to read config: %v", err))
	}

	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	return config.GetConfig(), nil
}

// newLogger builds a logger from the telemetry section without
// installing it as the process default.
func newLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.New(logging.Config{
		Level:  cfg.Telemetry.LogLevel,
		Format: cfg.Telemetry.LogFormat,
	})
	if err != nil {
		return slog.Default()
	}
	return logger
}
