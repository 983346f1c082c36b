package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chargekit/ocpicheck/pkg/cli"
	"chargekit/ocpicheck/pkg/config"
	"chargekit/ocpicheck/pkg/history"
	"chargekit/ocpicheck/pkg/ocpi"
	"chargekit/ocpicheck/pkg/watch"
)

var watchFlags struct {
	dir        string
	objectType string
	debounce   time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate payload files as they change",
	Long: `Watch a directory and revalidate payload files on every write.

Changes are debounced per file, so an editor that writes a file several
times in quick succession triggers a single revalidation. When the
history store is enabled in the configuration, every revalidation is
recorded with source "watch".

Examples:
  # Watch a directory of session payloads
  ocpicheck watch --type session --dir payloads/

  # Slower debounce for network filesystems
  ocpicheck watch --type cdr --dir payloads/ --debounce 2s`,
	RunE: watchFilesCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", "", "directory to watch")
	watchCmd.Flags().StringVarP(&watchFlags.objectType, "type", "t", "", "object type: location, token, session, cdr, tariff")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "override debounce interval")
}

func watchFilesCmd(cmd *cobra.Command, args []string) error {
	if watchFlags.dir == "" {
		return fmt.Errorf("--dir must be specified")
	}
	if watchFlags.objectType == "" {
		return fmt.Errorf("--type must be specified")
	}

	objectType, err := ocpi.ParseObjectType(watchFlags.objectType)
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	watchCfg := watch.DefaultConfig()
	watchCfg.Path = watchFlags.dir
	watchCfg.DebounceInterval = cfg.Watch.Debounce
	watchCfg.Extensions = cfg.Watch.Extensions
	if watchFlags.debounce > 0 {
		watchCfg.DebounceInterval = watchFlags.debounce
	}

	watcher, err := watch.New(watchCfg, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	var store history.Store
	if cfg.History.Enabled {
		store, err = openHistoryStore(cfg)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer store.Close()
	}

	validator := ocpi.NewValidator(profileOptions(cfg)...)

	fmt.Printf("Watching %s for %s payloads (Ctrl+C to stop)\n", watchFlags.dir, objectType)

	ctx := cli.SetupSignalHandler()
	err = watcher.Watch(ctx, func(path string) {
		revalidate(ctx, validator, store, objectType, path, logger)
	})
	if err != nil && ctx.Err() == nil {
		return cli.NewCommandError("watch", err)
	}

	fmt.Println("\n✓ Watcher stopped")
	return nil
}

// revalidate runs one file through the validator and prints the outcome.
func revalidate(ctx context.Context, validator *ocpi.Validator, store history.Store, objectType ocpi.ObjectType, path string, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read changed file", "path", path, "error", err)
		return
	}

	started := time.Now()
	result := validator.Validate(objectType, data)
	elapsed := time.Since(started)

	if result.IsValid {
		fmt.Printf("✓ %s\n", path)
	} else {
		fmt.Printf("✗ %s\n", path)
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e.Error())
		}
	}

	if store != nil {
		rec := history.NewRecord(result, "watch", len(data), elapsed)
		if err := store.Save(ctx, rec); err != nil {
			logger.Warn("failed to record validation", "path", path, "error", err)
		}
	}
}

// profileOptions converts configured validation profiles into validator
// options. Unknown object type names were already rejected by config
// validation.
func profileOptions(cfg *config.Config) []ocpi.Option {
	opts := make([]ocpi.Option, 0, len(cfg.Validation.Profiles))
	for name, profile := range cfg.Validation.Profiles {
		opts = append(opts, ocpi.WithRequiredFields(ocpi.ObjectType(name), profile.Required))
	}
	return opts
}

// openHistoryStore creates the configured history store backend.
func openHistoryStore(cfg *config.Config) (history.Store, error) {
	switch cfg.History.Driver {
	case "memory":
		return history.NewMemoryStore(), nil
	default:
		return history.NewSQLiteStore(cfg.History.Path)
	}
}
