// Package cli implements the command line interface for meinbt.
// Commands are thin: they wire adapters to the core services and format
// results; extraction logic lives behind the driving ports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meinbt/meinbt-cli/internal/adapters/driven/config/file"
	"github.com/meinbt/meinbt-cli/internal/adapters/driven/events/zaplog"
	"github.com/meinbt/meinbt-cli/internal/adapters/driven/storage/sqlite"
	"github.com/meinbt/meinbt-cli/internal/connectors/filesystem"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driving"
	"github.com/meinbt/meinbt-cli/internal/core/services"
	"github.com/meinbt/meinbt-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagStoreDir  string
)

// Wired dependencies. Commands construct them lazily through ensureWiring
// so tests can inject fakes beforehand.
var (
	configStore   driven.ConfigStore
	inputResolver driven.InputResolver
	storeProvider driven.StoreProvider
	eventSink     driven.EventSink
)

// newIngestor builds the ingestion service. Swapped in tests.
var newIngestor = func(stores driven.StoreProvider, events driven.EventSink, options services.IngestOptions) driving.Ingestor {
	return services.NewIngestService(stores, events, options)
}

var rootCmd = &cobra.Command{
	Use:   "meinbt",
	Short: "Extract Bundestag open data into a local record store",
	Long: `meinbt converts the German Bundestag's public XML exports into
queryable records.

It understands two export schemas: the member roster (Stammdaten, one
record per member of parliament) and printed matter (Drucksachen, one
record per document). Extracted records land in a local store, one
collection per schema.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.meinbt)")
	rootCmd.PersistentFlags().StringVar(&flagStoreDir, "store", "", "record store directory (default ~/.meinbt/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureWiring constructs the default adapters for anything a test has
// not already injected.
func ensureWiring() error {
	if configStore == nil {
		store, err := file.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		configStore = store
	}
	if inputResolver == nil {
		inputResolver = filesystem.New()
	}
	if storeProvider == nil {
		dataDir := flagStoreDir
		if dataDir == "" {
			dataDir = configStore.GetString("store.path")
		}
		storeProvider = sqlite.NewProvider(dataDir)
	}
	if eventSink == nil {
		log, err := buildEventLogger()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		eventSink = zaplog.New(log)
	}
	return nil
}

// buildEventLogger picks the zap preset from configuration. Verbose mode
// always gets the development preset so debug events are visible.
func buildEventLogger() (*zap.Logger, error) {
	if flagVerbose || configStore.GetString("log.mode") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
