package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/paylens/fee-insights/pkg/adapters"
	"github.com/paylens/fee-insights/pkg/models/store"
	"github.com/paylens/fee-insights/pkg/server"
	"github.com/paylens/fee-insights/pkg/services/config"
	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/paylens/fee-insights/pkg/services/sample"
	"github.com/paylens/fee-insights/pkg/store/duckdb"
	duckdbinvoice "github.com/paylens/fee-insights/pkg/store/duckdb/invoice"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the fee insights dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Provider: provider,
		},
	})

	return api.Start()
}

func buildProvider(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (datasource.Provider, error) {
	if cfg.Source == "sample" {
		var rng *rand.Rand
		if cfg.Sample.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.Sample.Seed))
		}
		return datasource.NewSampleProvider(rng, sample.Config{
			Records: cfg.Sample.Records,
			Year:    cfg.Sample.Year,
		}), nil
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	invoiceStore, err := duckdbinvoice.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice store: %w", err)
	}

	if err := seedIfEmpty(ctx, db, invoiceStore, cfg); err != nil {
		return nil, err
	}

	logger.Info().Str("db", cfg.Database.Path).Msg("invoice store ready")
	return datasource.NewStoreProvider(invoiceStore)
}

// seedIfEmpty fills a fresh database with a synthetic data set so the
// dashboard has something to show on first start.
func seedIfEmpty(ctx context.Context, db *sql.DB, invoiceStore duckdbinvoice.Store, cfg *config.Config) error {
	stats, err := invoiceStore.GetStats(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to read invoice stats: %w", err)
	}
	if stats.RecordsCount > 0 {
		return nil
	}

	var rng *rand.Rand
	if cfg.Sample.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Sample.Seed))
	}
	records := sample.Generate(rng, sample.Config{
		Records: cfg.Sample.Records,
		Year:    cfg.Sample.Year,
	})

	rows := make([]store.InvoiceRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, adapters.MapDomainRecordToStoreInvoiceRow(record))
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	if err := invoiceStore.Add(duckdb.WithTransaction(ctx, tx), rows); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to seed invoice store: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	zerolog.Ctx(ctx).Info().Int("records", len(rows)).Msg("seeded empty invoice store")
	return nil
}
