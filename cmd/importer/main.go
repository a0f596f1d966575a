package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MichalMitros/catalog-importer/cmd/importer/config"
	"github.com/MichalMitros/catalog-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-importer/internal/importer"
	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-importer/internal/platform/storage"
	"github.com/MichalMitros/catalog-importer/internal/spreadsheet"
	"github.com/MichalMitros/catalog-importer/pkg/v1/notifier"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// UserAgent is user agent header value used when fetching spreadsheet file.
	UserAgent = "catalog-importer/0.0.1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	pgDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)
	if err := store.Ping(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't connect to Postgres")
	}

	var (
		amqpConnection *amqp.Connection
		mq             *rabbitmq.RabbitMQ
		reportNotifier *notifier.ReportNotifier
	)
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		mq, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		ntf := notifier.NewReportNotifier(notifier.NewRabbitMQSender(mq, cfg.RabbitMQ.RoutingKey))
		reportNotifier = &ntf
	}

	records, err := readRecords(ctx, &cfg)
	if errors.Is(err, spreadsheet.ErrMissingColumn) {
		logger.Fatal().
			Err(err).
			Str("location", cfg.SpreadsheetPath).
			Strs("expectedColumns", expectedColumns(spreadsheet.Columns())).
			Msg("can't read spreadsheet")
	}
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("location", cfg.SpreadsheetPath).
			Msg("can't read spreadsheet")
	}

	logger.Info().
		Int("records", len(records)).
		Bool("dryRun", cfg.DryRun).
		Msg("import started")

	imp := importer.NewImporter(store, cfg.Catalog.Settings(), &logger, importer.WithDryRun(cfg.DryRun))
	report, importErr := imp.Import(ctx, records)

	if reportNotifier != nil {
		if err := reportNotifier.NotifyImportFinished(ctx, report); err != nil {
			logger.Error().
				Err(err).
				Str("runId", report.RunID.String()).
				Msg("can't publish import report")
		}
	}

	if importErr != nil {
		logger.Fatal().
			Err(importErr).
			Str("runId", report.RunID.String()).
			Msg("import failed")
	}

	logSummary(&logger, report)

	// close connections
	var eg errgroup.Group

	eg.Go(func() error {
		if err := pgDB.Close(); err != nil {
			return fmt.Errorf("can't close Postgres connection: %w", err)
		}
		return nil
	})

	if amqpConnection != nil {
		eg.Go(func() error {
			if err := mq.Close(); err != nil {
				return fmt.Errorf("can't close RabbitMQ channel: %w", err)
			}
			if err := amqpConnection.Close(); err != nil {
				return fmt.Errorf("can't close RabbitMQ connection: %w", err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close connections")
	}
}

// readRecords fetches spreadsheet and decodes product records from it.
func readRecords(ctx context.Context, cfg *config.Config) ([]models.ProductRecord, error) {
	fet := fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent)

	file, err := fet.FetchFile(ctx, cfg.SpreadsheetPath)
	if err != nil {
		return nil, fmt.Errorf("can't fetch spreadsheet: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := spreadsheet.Decoder{SheetName: cfg.SheetName}.Decode(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("can't decode spreadsheet: %w", err)
	}

	return records, nil
}

// expectedColumns describes spreadsheet header schema, one entry per column with its accepted headers.
func expectedColumns(cols []spreadsheet.Column) []string {
	described := make([]string, 0, len(cols))
	for _, col := range cols {
		entry := col.Field + " (" + strings.Join(col.Aliases, ", ") + ")"
		if col.Required {
			entry += " required"
		}
		described = append(described, entry)
	}
	return described
}

func logSummary(logger *zerolog.Logger, report *models.ImportReport) {
	logger.Info().
		Str("runId", report.RunID.String()).
		Int("inserted", report.Inserted()).
		Int("skippedDuplicates", report.SkippedDuplicates()).
		Int("skippedNoManufacturer", report.SkippedNoManufacturer()).
		Bool("dryRun", report.DryRun).
		Bool("committed", report.Committed).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("import finished")
}
