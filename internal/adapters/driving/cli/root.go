// Package cli implements the cobra command surface over the provider
// driving port.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/adapters/driven/config/file"
	"github.com/captainfanatic/trolly/internal/adapters/driven/notify"
	"github.com/captainfanatic/trolly/internal/adapters/driven/storage/sqlite"
	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driving"
	"github.com/captainfanatic/trolly/internal/core/services"
	"github.com/captainfanatic/trolly/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "0.2.0-dev"

var (
	cfgDirFlag  string
	dataDirFlag string
	verboseFlag bool
)

// Wiring shared by the subcommands, built lazily by openProvider.
var (
	cfg      file.Config
	matcher  domain.Matcher
	store    *sqlite.Store
	bus      *notify.Bus
	provider driving.Provider
)

var rootCmd = &cobra.Command{
	Use:   "trolly",
	Short: "A local shopping list",
	Long: `Trolly keeps a shopping list in a local SQLite database and exposes
it through content URIs:

  content://<authority>/shoppinglist        the whole list
  content://<authority>/shoppinglist/<id>   a single item`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDirFlag, "config", "", "config directory (default ~/.trolly)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "db", "", "database directory (default ~/.trolly/data)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	defer closeStore()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and builds the URI matcher.
func loadConfig() error {
	logger.SetVerbose(verboseFlag)

	var err error
	cfg, err = file.Load(cfgDirFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	matcher = domain.NewMatcher(cfg.Authority)
	return nil
}

// openProvider wires the store, bus and provider service. Safe to
// call more than once.
func openProvider() error {
	if provider != nil {
		return nil
	}
	if err := loadConfig(); err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDirFlag != "" {
		dataDir = dataDirFlag
	}

	var err error
	store, err = sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	bus = notify.NewBus()
	svc := services.NewProviderService(matcher, store.Items(), bus)
	svc.SetUntitledLabel(cfg.UntitledLabel)
	provider = svc
	return nil
}

// closeStore releases the database handle if one was opened.
func closeStore() {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing store: %v", err)
		}
		store = nil
		provider = nil
		bus = nil
	}
}

// parseItemID converts a CLI argument into a positive item id.
func parseItemID(arg string) (int64, error) {
	uri, err := matcher.Match(matcher.Collection().String() + "/" + arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an item id", domain.ErrInvalidInput, arg)
	}
	return uri.ID(), nil
}
