package analytics

import (
	"sort"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// DefaultTopLimit caps ranked series when the caller passes no limit.
const DefaultTopLimit = 10

// rankSeries turns grouped totals into a series sorted by value descending.
// Ties break on name so output is stable across map iteration order.
func rankSeries(totals map[string]float64, limit int) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, len(totals))
	for name, value := range totals {
		points = append(points, domain.SeriesPoint{Name: name, Value: value})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}
