package invoice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/paylens/fee-insights/pkg/store/duckdb"

	"github.com/paylens/fee-insights/pkg/models/store"
)

// Store supports both ingestion (Add) and read (List/GetStats) operations
// for invoice records in DuckDB.
type Store interface {
	Add(ctx context.Context, rows []store.InvoiceRow) error
	List(ctx context.Context) ([]store.InvoiceRow, error)
	GetStats(ctx context.Context, since *time.Time) (*store.InvoiceStats, error)
}

type invoiceStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &invoiceStore{
		db: db,
	}, nil
}

func (s *invoiceStore) Add(ctx context.Context, rows []store.InvoiceRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO invoice_data (
			event_id, total_costs, ccy, bill_date, service_code_description,
			event_desc, qty_amt, rate, charge, tax_charge, total_charge,
			invoice_ica, collection_method, input_file_name, inv_no, uom
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.ExecContext(ctx,
			row.EventID,
			row.TotalCosts,
			row.Ccy,
			row.BillDate,
			row.ServiceCodeDescription,
			row.EventDesc,
			row.QtyAmt,
			row.Rate,
			row.Charge,
			row.TaxCharge,
			row.TotalCharge,
			row.InvoiceICA,
			row.CollectionMethod,
			row.InputFileName,
			row.InvNo,
			row.UOM,
		)

		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}

func (s *invoiceStore) List(ctx context.Context) ([]store.InvoiceRow, error) {
	query := `
		SELECT event_id, total_costs, ccy, bill_date, service_code_description,
			event_desc, qty_amt, rate, charge, tax_charge, total_charge,
			invoice_ica, collection_method, input_file_name, inv_no, uom
		FROM invoice_data
		ORDER BY bill_date DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

func (s *invoiceStore) GetStats(ctx context.Context, since *time.Time) (*store.InvoiceStats, error) {
	query := `SELECT COUNT(*) as total_records, MIN(bill_date) as earliest_record FROM invoice_data`
	args := []interface{}{}
	if since != nil {
		query += " WHERE bill_date > ?"
		args = append(args, *since)
	}
	var total int64
	var earliest sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total, &earliest); err != nil {
		return nil, fmt.Errorf("get invoice stats: %w", err)
	}
	var first *time.Time
	if earliest.Valid {
		t := earliest.Time
		first = &t
	}
	return &store.InvoiceStats{RecordsCount: total, FirstRecordTime: first}, nil
}

func scanInvoiceRows(rows *sql.Rows) ([]store.InvoiceRow, error) {
	records := make([]store.InvoiceRow, 0)
	for rows.Next() {
		var r store.InvoiceRow
		if err := rows.Scan(
			&r.EventID,
			&r.TotalCosts,
			&r.Ccy,
			&r.BillDate,
			&r.ServiceCodeDescription,
			&r.EventDesc,
			&r.QtyAmt,
			&r.Rate,
			&r.Charge,
			&r.TaxCharge,
			&r.TotalCharge,
			&r.InvoiceICA,
			&r.CollectionMethod,
			&r.InputFileName,
			&r.InvNo,
			&r.UOM,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
