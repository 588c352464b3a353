package datasource

import (
	"database/sql"
	"math/rand"

	"github.com/paylens/fee-insights/pkg/services/config"
	"github.com/paylens/fee-insights/pkg/services/sample"
	"github.com/paylens/fee-insights/pkg/store/duckdb"
	"github.com/paylens/fee-insights/pkg/store/duckdb/invoice"
	feesql "github.com/paylens/fee-insights/pkg/store/sql"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// SampleFactory builds a synthetic data provider from the config at
// configPath. A non-zero seed makes the data set reproducible.
func SampleFactory(configPath string) (Provider, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Sample.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Sample.Seed))
	}

	return NewSampleProvider(rng, sample.Config{
		Records: cfg.Sample.Records,
		Year:    cfg.Sample.Year,
	}), nil
}

// StoreFactory builds a provider reading from the DuckDB file named in
// the config at configPath.
func StoreFactory(configPath string) (Provider, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return nil, err
	}

	store, err := invoice.NewStore(db)
	if err != nil {
		return nil, err
	}

	return NewStoreProvider(store)
}

// SQLFactory builds a provider over a plain database/sql connection to
// the configured database file. Unlike StoreFactory it never creates the
// schema, so it suits databases owned by another process.
func SQLFactory(configPath string) (Provider, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	reader, err := feesql.NewInvoiceReader(db)
	if err != nil {
		return nil, err
	}

	return NewSQLProvider(reader)
}

// NewDefaultRegistry returns a registry with the built-in sources.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register("sample", SampleFactory)
	_ = r.Register("store", StoreFactory)
	_ = r.Register("sql", SQLFactory)
	return r
}
