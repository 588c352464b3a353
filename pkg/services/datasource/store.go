package datasource

import (
	"context"
	"fmt"

	"github.com/paylens/fee-insights/pkg/adapters"
	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/store/duckdb/invoice"
)

type storeProvider struct {
	store invoice.Store
}

// NewStoreProvider returns a Provider reading invoice rows from the
// local DuckDB store.
func NewStoreProvider(store invoice.Store) (Provider, error) {
	if store == nil {
		return nil, fmt.Errorf("invoice store is nil")
	}
	return &storeProvider{store: store}, nil
}

func (p *storeProvider) ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error) {
	rows, err := p.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	records := make([]domain.InvoiceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, adapters.MapStoreInvoiceRowToDomainRecord(row))
	}
	return records, nil
}
