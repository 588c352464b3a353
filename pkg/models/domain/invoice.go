package domain

import "time"

type CollectionMethod string

const (
	CollectionAuto   CollectionMethod = "AUTO"
	CollectionManual CollectionMethod = "MANUAL"
)

// InvoiceRecord is a single scheme fee line item. Monetary fields are signed:
// negative values represent reversals or penalty charges.
type InvoiceRecord struct {
	ID                     string
	TotalCosts             float64
	Currency               string
	BillDate               time.Time
	ServiceCodeDescription string
	EventDesc              string
	QtyAmt                 float64
	Rate                   float64
	Charge                 float64
	TaxCharge              float64
	TotalCharge            float64
	InvoiceICA             string
	CollectionMethod       CollectionMethod
	InputFileName          string
	InvNo                  string
	UOM                    string

	// Derived fields. Region and Country come from the ICA lookup table,
	// IsReversal from the sign of TotalCharge. Empty region or country
	// excludes the record from geographic aggregation.
	Region         string
	Country        string
	IsReversal     bool
	ProcessingTime float64
	AgentID        string
}

type InvoiceStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
}
