// Package main imports vocabulary from a spreadsheet into a category.
//
//	importer -file words.xlsx -category <uuid> [-sheet Sheet1] [-start-row 2] [-dry-run]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/flipwise/flipwise/internal/config"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/platform/postgres"
	"github.com/flipwise/flipwise/internal/service"
	"github.com/google/uuid"
)

type options struct {
	file       string
	categoryID uuid.UUID
	sheet      string
	startRow   int
	dryRun     bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		slog.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	var category string
	fs.StringVar(&opts.file, "file", "", "path to an .xlsx or .csv file (required)")
	fs.StringVar(&category, "category", "", "ID of the category to import into (required)")
	fs.StringVar(&opts.sheet, "sheet", "", "worksheet name (default from config)")
	fs.IntVar(&opts.startRow, "start-row", 0, "first data row, 1-based (default from config)")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "parse and report without writing to the database")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.file == "" {
		return options{}, errors.New("-file is required")
	}
	if category == "" {
		return options{}, errors.New("-category is required")
	}
	id, err := uuid.Parse(category)
	if err != nil {
		return options{}, fmt.Errorf("-category: %w", err)
	}
	opts.categoryID = id
	if opts.startRow < 0 {
		return options{}, errors.New("-start-row must be positive")
	}
	return opts, nil
}

// importOptions layers the command line over the configured layout.
func importOptions(opts options, cfg config.ImporterConfig) importer.Options {
	out := importer.DefaultOptions()
	if cfg.Sheet != "" {
		out.Sheet = cfg.Sheet
	}
	if cfg.StartRow > 0 {
		out.StartRow = cfg.StartRow
	}
	if opts.sheet != "" {
		out.Sheet = opts.sheet
	}
	if opts.startRow > 0 {
		out.StartRow = opts.startRow
	}
	return out
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With(slog.String("component", "importer"))

	result, err := importer.ParseFile(opts.file, importOptions(opts, cfg.Importer))
	if err != nil {
		return err
	}
	for _, rowErr := range result.Errors {
		log.Warn("row skipped", slog.Int("line", rowErr.Line), slog.String("reason", rowErr.Reason))
	}
	log.Info("spreadsheet parsed",
		slog.String("file", opts.file),
		slog.Int("rows", len(result.Rows)),
		slog.Int("skipped", len(result.Errors)),
		slog.Int("blank", result.Blank))

	if opts.dryRun {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	words, err := service.NewWordService(
		postgres.NewPostgresCategoryStore(db, log),
		postgres.NewPostgresWordStore(db, log),
		log,
	)
	if err != nil {
		return err
	}

	imported, err := words.ImportWords(ctx, opts.categoryID, result.Entries())
	if err != nil {
		return err
	}

	log.Info("import complete",
		slog.String("category_id", opts.categoryID.String()),
		slog.Int("imported", len(imported)))
	return nil
}
