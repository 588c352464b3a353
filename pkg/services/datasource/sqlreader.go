package datasource

import (
	"context"
	"fmt"

	"github.com/paylens/fee-insights/pkg/adapters"
	"github.com/paylens/fee-insights/pkg/models/domain"
	feesql "github.com/paylens/fee-insights/pkg/store/sql"
)

type sqlProvider struct {
	reader feesql.InvoiceReader
}

// NewSQLProvider returns a Provider reading invoice rows through any
// database/sql connection, for warehouses managed outside this service.
func NewSQLProvider(reader feesql.InvoiceReader) (Provider, error) {
	if reader == nil {
		return nil, fmt.Errorf("invoice reader is nil")
	}
	return &sqlProvider{reader: reader}, nil
}

func (p *sqlProvider) ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error) {
	rows, err := p.reader.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	records := make([]domain.InvoiceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, adapters.MapStoreInvoiceRowToDomainRecord(row))
	}
	return records, nil
}
