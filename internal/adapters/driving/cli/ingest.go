package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driving"
	"github.com/meinbt/meinbt-cli/internal/core/services"
)

var (
	flagOnError   string
	flagBatchSize int
	flagDryRun    bool
	flagWatch     string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract records from Bundestag XML exports",
	Long: `Extracts records from XML exports and stores them locally.

Inputs may be XML files, directories, or zip archives as published on
the Bundestag open-data portal. Each input is processed by its own
worker; records within one input are stored in document order.`,
}

var ingestMDBCmd = &cobra.Command{
	Use:   "mdb [path...]",
	Short: "Ingest the member roster (Stammdaten)",
	Long: `Ingests the all-member roster export. Every mdb element becomes one
record in the mdb collection.`,
	RunE: runIngest(domain.SchemaMDB),
}

var ingestDrucksachenCmd = &cobra.Command{
	Use:   "drucksachen [path...]",
	Short: "Ingest printed matter (Drucksachen)",
	Long: `Ingests printed-matter exports. Every input carries exactly one
dokument element, which becomes one record in the drucksachen
collection.`,
	RunE: runIngest(domain.SchemaDrucksache),
}

func init() {
	ingestCmd.PersistentFlags().StringVar(&flagOnError, "on-error", "", "per-element failure policy: abort or skip (default abort)")
	ingestCmd.PersistentFlags().IntVar(&flagBatchSize, "batch-size", 0, "records per store batch")
	ingestCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "extract and count records without storing them")
	ingestCmd.PersistentFlags().StringVar(&flagWatch, "watch", "", "watch a drop directory instead of resolving arguments")

	ingestCmd.AddCommand(ingestMDBCmd)
	ingestCmd.AddCommand(ingestDrucksachenCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(schema domain.Schema) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := ensureWiring(); err != nil {
			return err
		}

		options, err := ingestOptions()
		if err != nil {
			return err
		}
		service := newIngestor(storeProvider, eventSink, options)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if flagWatch != "" {
			if len(args) > 0 {
				return errors.New("--watch does not take path arguments")
			}
			return watchAndIngest(ctx, cmd, service, schema)
		}

		if len(args) == 0 {
			return errors.New("no inputs given; pass files, directories, or archives")
		}
		inputs, err := inputResolver.Resolve(ctx, args)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return errors.New("no XML inputs found")
		}

		report, err := service.Ingest(ctx, schema, inputs)
		printReport(cmd, report)
		return err
	}
}

// ingestOptions merges flags with the configuration file; flags win.
func ingestOptions() (services.IngestOptions, error) {
	options := services.IngestOptions{
		BatchSize: flagBatchSize,
		DryRun:    flagDryRun,
	}
	if options.BatchSize == 0 {
		options.BatchSize = configStore.GetInt("ingest.batch_size")
	}

	policy := flagOnError
	if policy == "" {
		policy = configStore.GetString("ingest.on_error")
	}
	if policy != "" {
		parsed, err := services.ParseErrorPolicy(policy)
		if err != nil {
			return services.IngestOptions{}, err
		}
		options.OnError = parsed
	}

	return options, nil
}

// watchAndIngest ingests inputs one at a time as they land in the drop
// directory. A failing input is reported and watching continues.
func watchAndIngest(ctx context.Context, cmd *cobra.Command, service driving.Ingestor, schema domain.Schema) error {
	cmd.Printf("Watching %s for %s exports. Ctrl-C stops.\n", flagWatch, schema)

	inputs, errs := inputResolver.Watch(ctx, flagWatch)
	for {
		select {
		case <-ctx.Done():
			return nil

		case input, ok := <-inputs:
			if !ok {
				return nil
			}
			report, err := service.Ingest(ctx, schema, []driven.Input{input})
			if err != nil {
				cmd.PrintErrf("%s: %v\n", input.URI(), err)
				continue
			}
			printReport(cmd, report)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if err != nil {
				return fmt.Errorf("watching %s: %w", flagWatch, err)
			}
		}
	}
}

func printReport(cmd *cobra.Command, report *driving.Report) {
	if report == nil {
		return
	}
	for _, fileReport := range report.Files {
		switch {
		case fileReport.Err != nil:
			cmd.PrintErrf("%s: failed: %v\n", fileReport.URI, fileReport.Err)
		case fileReport.Version != "":
			cmd.Printf("%s (%s): %d records, %d skipped\n",
				fileReport.URI, fileReport.Version, fileReport.Records, fileReport.Failures)
		default:
			cmd.Printf("%s: %d records, %d skipped\n",
				fileReport.URI, fileReport.Records, fileReport.Failures)
		}
	}
	if len(report.Files) > 1 {
		cmd.Printf("Total: %d records, %d failures across %d inputs\n",
			report.Records, report.Failures, len(report.Files))
	}
}
