package analytics

import (
	"testing"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeKPIs(t *testing.T) {
	now := date(2024, time.June, 15)

	t.Run("totals and average rate", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{TotalCharge: 100, Rate: 1, BillDate: date(2024, time.March, 1)},
			{TotalCharge: -20, Rate: -0.5, BillDate: date(2024, time.March, 10)},
			{TotalCharge: 50, Rate: 2, BillDate: date(2024, time.April, 1)},
		}

		kpis := ComputeKPIs(records, now)

		assert.InDelta(t, 130, kpis.TotalFeesPaid, 1e-9)
		assert.InDelta(t, 2.5/3, kpis.AverageRate, 1e-9)
		assert.Equal(t, 3, kpis.NumberOfInvoices)
	})

	t.Run("month over month growth", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{TotalCharge: 100, BillDate: date(2024, time.May, 5)},
			{TotalCharge: 150, BillDate: date(2024, time.June, 5)},
		}

		kpis := ComputeKPIs(records, now)

		assert.InDelta(t, 50, kpis.MonthlyGrowth, 1e-9)
	})

	t.Run("growth matches on month number across years", func(t *testing.T) {
		// The previous-month bucket picks up May records from any year.
		records := []domain.InvoiceRecord{
			{TotalCharge: 100, BillDate: date(2023, time.May, 5)},
			{TotalCharge: 100, BillDate: date(2024, time.May, 5)},
			{TotalCharge: 100, BillDate: date(2024, time.June, 5)},
		}

		kpis := ComputeKPIs(records, now)

		assert.InDelta(t, -50, kpis.MonthlyGrowth, 1e-9)
	})

	t.Run("zero previous month yields zero growth", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{TotalCharge: 150, BillDate: date(2024, time.June, 5)},
		}

		kpis := ComputeKPIs(records, now)

		assert.Zero(t, kpis.MonthlyGrowth)
	})

	t.Run("empty input returns zero values, not NaN", func(t *testing.T) {
		kpis := ComputeKPIs(nil, now)

		assert.Zero(t, kpis.TotalFeesPaid)
		assert.Zero(t, kpis.AverageRate)
		assert.Zero(t, kpis.NumberOfInvoices)
		assert.Zero(t, kpis.MonthlyGrowth)
	})
}
