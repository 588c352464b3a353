// Package sample produces synthetic invoice records for demonstrations and
// tests. Generation is an explicit call with an injectable rand source, never
// an import-time side effect, so a fixed seed reproduces the same data set.
package sample

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/services/ica"
)

var serviceDescriptions = []string{
	"Card Payment Processing",
	"International Transfer",
	"ACH Processing",
	"Wire Transfer",
	"Foreign Exchange",
	"Merchant Services",
	"ATM Transaction",
	"Overdraft Fee",
	"Account Maintenance",
	"Regulatory Compliance",
}

var eventDescriptions = []string{
	"Transaction Processing",
	"Currency Conversion",
	"Risk Assessment",
	"Compliance Check",
	"Settlement",
	"Authorization",
	"Clearing",
	"Reconciliation",
	"Reporting",
	"Investigation",
}

var (
	currencies = []string{"USD", "EUR", "GBP", "JPY", "CAD"}
	icaCodes   = []string{"VISA", "MAST", "AMEX", "DISC", "DINE"}
	uoms       = []string{"TRANSACTION", "VOLUME", "ACCOUNT", "FLAT"}
)

// taxRate applies to every generated charge.
const taxRate = 0.08

// negativeRateChance is the probability a line carries a penalty rate.
const negativeRateChance = 0.15

type Config struct {
	// Records is the number of records to generate (default 500).
	Records int
	// Year spreads the bill dates across the given calendar year
	// (default 2023).
	Year int
}

func DefaultConfig() Config {
	return Config{Records: 500, Year: 2023}
}

// Generate builds a randomized record set satisfying the construction
// invariants charge = qty × rate and totalCharge = charge + tax. A nil rand
// source is replaced by a time-seeded one. Records come back sorted by bill
// date descending, newest first.
func Generate(rng *rand.Rand, cfg Config) []domain.InvoiceRecord {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Records <= 0 {
		cfg.Records = DefaultConfig().Records
	}
	if cfg.Year <= 0 {
		cfg.Year = DefaultConfig().Year
	}

	records := make([]domain.InvoiceRecord, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		month := time.Month(rng.Intn(12) + 1)
		day := rng.Intn(28) + 1
		billDate := time.Date(cfg.Year, month, day, 0, 0, 0, 0, time.UTC)

		qty := float64(rng.Intn(1000) + 1)
		rate := rng.Float64()*5 + 0.1
		if rng.Float64() < negativeRateChance {
			rate = -rate
		}

		charge := qty * rate
		tax := charge * taxRate
		totalCharge := charge + tax

		invoiceICA := icaCodes[rng.Intn(len(icaCodes))]
		loc := ica.Lookup(invoiceICA)

		method := domain.CollectionAuto
		if rng.Float64() <= 0.3 {
			method = domain.CollectionManual
		}

		records = append(records, domain.InvoiceRecord{
			ID:                     fmt.Sprintf("INV-%05d", i+1),
			TotalCosts:             totalCharge,
			Currency:               currencies[rng.Intn(len(currencies))],
			BillDate:               billDate,
			ServiceCodeDescription: serviceDescriptions[rng.Intn(len(serviceDescriptions))],
			EventDesc:              eventDescriptions[rng.Intn(len(eventDescriptions))],
			QtyAmt:                 qty,
			Rate:                   rate,
			Charge:                 charge,
			TaxCharge:              tax,
			TotalCharge:            totalCharge,
			InvoiceICA:             invoiceICA,
			CollectionMethod:       method,
			InputFileName:          fmt.Sprintf("scheme_fees_%04d_%02d_batch%d.csv", cfg.Year, month, rng.Intn(4)+1),
			InvNo:                  fmt.Sprintf("INV-%04d%02d-%d", cfg.Year, month, rng.Intn(20)+1),
			UOM:                    uoms[rng.Intn(len(uoms))],
			Region:                 loc.Region,
			Country:                loc.Country,
			IsReversal:             totalCharge < 0,
			ProcessingTime:         rng.Float64() * 24,
			AgentID:                fmt.Sprintf("AGENT-%d", rng.Intn(50)+1),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].BillDate.After(records[j].BillDate)
	})
	return records
}
