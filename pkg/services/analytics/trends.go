package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// monthLabelFormat renders bill dates as "Jan 24" style bucket labels. The
// label parses back to a date, which is how trend buckets get sorted.
const monthLabelFormat = "Jan 06"

// GetMonthlyTrends buckets total charges by calendar month and returns the
// buckets in date-ascending order.
func GetMonthlyTrends(records []domain.InvoiceRecord) []domain.SeriesPoint {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.BillDate.Format(monthLabelFormat)] += r.TotalCharge
	}

	points := make([]domain.SeriesPoint, 0, len(totals))
	for label, total := range totals {
		points = append(points, domain.SeriesPoint{Name: label, Value: total})
	}

	sort.Slice(points, func(i, j int) bool {
		ti, _ := time.Parse(monthLabelFormat, points[i].Name)
		tj, _ := time.Parse(monthLabelFormat, points[j].Name)
		return ti.Before(tj)
	})
	return points
}

// GetTopServiceCodes ranks service code descriptions by summed total charge.
// A non-positive limit falls back to DefaultTopLimit.
func GetTopServiceCodes(records []domain.InvoiceRecord, limit int) []domain.SeriesPoint {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.ServiceCodeDescription] += r.TotalCharge
	}
	return rankSeries(totals, limit)
}

// GetTopEventDescriptions ranks event descriptions by summed total charge.
// A non-positive limit falls back to DefaultTopLimit.
func GetTopEventDescriptions(records []domain.InvoiceRecord, limit int) []domain.SeriesPoint {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.EventDesc] += r.TotalCharge
	}
	return rankSeries(totals, limit)
}

// GetCurrencyDistribution sums absolute charges per currency, so reversals
// add to a currency's volume rather than cancelling it.
func GetCurrencyDistribution(records []domain.InvoiceRecord) []domain.SeriesPoint {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.Currency] += math.Abs(r.TotalCharge)
	}
	return dropZeroes(rankSeries(totals, 0))
}

// GetNetCurrencyDistribution keeps the sign when summing, so a currency whose
// charges and reversals cancel out exactly disappears from the result.
func GetNetCurrencyDistribution(records []domain.InvoiceRecord) []domain.SeriesPoint {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.Currency] += r.TotalCharge
	}
	return dropZeroes(rankSeries(totals, 0))
}

func dropZeroes(points []domain.SeriesPoint) []domain.SeriesPoint {
	filtered := points[:0]
	for _, p := range points {
		if p.Value != 0 {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
