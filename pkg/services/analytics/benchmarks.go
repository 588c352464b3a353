package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// GetDynamicBenchmarks computes nearest-rank charge percentiles plus a
// year-over-year growth figure derived from the 2-digit year suffix of the
// monthly trend labels. Either year missing from the data yields zero growth.
func GetDynamicBenchmarks(records []domain.InvoiceRecord, now time.Time) domain.DynamicBenchmarks {
	if len(records) == 0 {
		return domain.DynamicBenchmarks{}
	}

	sorted := make([]float64, len(records))
	for i, r := range records {
		sorted[i] = r.TotalCharge
	}
	sort.Float64s(sorted)

	p75 := percentileAtRank(sorted, 0.75)
	benchmarks := domain.DynamicBenchmarks{
		Percentile75:       p75,
		Percentile90:       percentileAtRank(sorted, 0.90),
		Percentile95:       percentileAtRank(sorted, 0.95),
		YearOverYearGrowth: yearOverYearGrowth(records, now),
	}

	for _, r := range records {
		if r.TotalCharge > p75 {
			benchmarks.AboveP75Count++
		}
	}
	return benchmarks
}

// percentileAtRank picks sorted[floor(n*p)], the nearest-rank method with no
// interpolation. The index clamps to the last element for p close to 1.
func percentileAtRank(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func yearOverYearGrowth(records []domain.InvoiceRecord, now time.Time) float64 {
	currentSuffix := fmt.Sprintf("%02d", now.Year()%100)
	previousSuffix := fmt.Sprintf("%02d", (now.Year()-1)%100)

	var current, previous float64
	for _, p := range GetMonthlyTrends(records) {
		switch {
		case strings.HasSuffix(p.Name, previousSuffix):
			previous += p.Value
		case strings.HasSuffix(p.Name, currentSuffix):
			current += p.Value
		}
	}

	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
