// Package sql reads invoice rows through database/sql, keeping the reader
// independent of the concrete driver behind the connection.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/paylens/fee-insights/pkg/models/store"
)

const invoiceColumns = `
		event_id,
		total_costs,
		ccy,
		bill_date,
		service_code_description,
		event_desc,
		qty_amt,
		rate,
		charge,
		tax_charge,
		total_charge,
		invoice_ica,
		collection_method,
		input_file_name,
		inv_no,
		uom`

// InvoiceReader lists invoice rows from the backing store.
type InvoiceReader interface {
	ListInvoices(ctx context.Context) ([]store.InvoiceRow, error)
	GetStats(ctx context.Context) (*store.InvoiceStats, error)
}

type reader struct {
	db *sql.DB
}

func NewInvoiceReader(db *sql.DB) (InvoiceReader, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reader{db: db}, nil
}

func (r *reader) ListInvoices(ctx context.Context) ([]store.InvoiceRow, error) {
	logger := zerolog.Ctx(ctx)
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoice_data
		ORDER BY bill_date DESC`, invoiceColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("invoice query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close invoice query rows")
		}
	}(rows)

	var result []store.InvoiceRow
	for rows.Next() {
		var row store.InvoiceRow
		err := rows.Scan(
			&row.EventID,
			&row.TotalCosts,
			&row.Ccy,
			&row.BillDate,
			&row.ServiceCodeDescription,
			&row.EventDesc,
			&row.QtyAmt,
			&row.Rate,
			&row.Charge,
			&row.TaxCharge,
			&row.TotalCharge,
			&row.InvoiceICA,
			&row.CollectionMethod,
			&row.InputFileName,
			&row.InvNo,
			&row.UOM,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoice row iteration failed: %w", err)
	}
	return result, nil
}

func (r *reader) GetStats(ctx context.Context) (*store.InvoiceStats, error) {
	query := `
		SELECT COUNT(*), MIN(bill_date)
		FROM invoice_data`

	var stats store.InvoiceStats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.RecordsCount, &stats.FirstRecordTime)
	if err != nil {
		return nil, fmt.Errorf("invoice stats query failed: %w", err)
	}
	return &stats, nil
}
