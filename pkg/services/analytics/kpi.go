// Package analytics turns a flat collection of invoice fee records into the
// derived aggregates behind the dashboard: KPIs, trend series, scheme and
// geographic breakdowns, anomaly flags, lifecycle funnels and alert
// evaluations. Every function is pure: it reads the record slice, returns a
// fresh structure, and degrades to zero values/empty slices on insufficient
// data instead of producing NaN or Inf.
package analytics

import (
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// ComputeKPIs returns the headline figures for the record set. The
// month-over-month growth compares calendar month numbers only, ignoring the
// year, so a January 2024 bucket and a January 2023 bucket land in the same
// side of the comparison. `now` fixes the reference month.
func ComputeKPIs(records []domain.InvoiceRecord, now time.Time) domain.KPISummary {
	if len(records) == 0 {
		return domain.KPISummary{}
	}

	var totalFees, rateSum float64
	for _, r := range records {
		totalFees += r.TotalCharge
		rateSum += r.Rate
	}

	currentMonth := now.Month()
	previousMonth := currentMonth - 1

	var currentTotal, previousTotal float64
	for _, r := range records {
		switch r.BillDate.Month() {
		case currentMonth:
			currentTotal += r.TotalCharge
		case previousMonth:
			previousTotal += r.TotalCharge
		}
	}

	growth := 0.0
	if previousTotal > 0 {
		growth = (currentTotal - previousTotal) / previousTotal * 100
	}

	return domain.KPISummary{
		TotalFeesPaid:    totalFees,
		AverageRate:      rateSum / float64(len(records)),
		NumberOfInvoices: len(records),
		MonthlyGrowth:    growth,
	}
}
