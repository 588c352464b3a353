package store

import "time"

// InvoiceRow mirrors one row of the invoice_data table. Column naming follows
// the upstream feed (ccy, inv_no, qty_amt); the adapter layer translates to
// the domain record shape.
type InvoiceRow struct {
	EventID                string
	TotalCosts             float64
	Ccy                    string
	BillDate               time.Time
	ServiceCodeDescription string
	EventDesc              string
	QtyAmt                 float64
	Rate                   float64
	Charge                 float64
	TaxCharge              float64
	TotalCharge            float64
	InvoiceICA             string
	CollectionMethod       string
	InputFileName          string
	InvNo                  string
	UOM                    string
}

type InvoiceStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
}
