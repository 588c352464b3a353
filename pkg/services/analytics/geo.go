package analytics

import (
	"sort"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// GetGeoAnalytics groups records by (region, country) and scores each group
// by the fraction of its transactions carrying a negative rate. Records
// missing either field are excluded, not errors.
func GetGeoAnalytics(records []domain.InvoiceRecord) []domain.GeoAnalytics {
	type geoKey struct {
		region  string
		country string
	}
	type geoTotals struct {
		fees     float64
		count    int
		negative int
	}

	groups := make(map[geoKey]*geoTotals)
	for _, r := range records {
		if r.Region == "" || r.Country == "" {
			continue
		}
		k := geoKey{region: r.Region, country: r.Country}
		g := groups[k]
		if g == nil {
			g = &geoTotals{}
			groups[k] = g
		}
		g.fees += r.TotalCharge
		g.count++
		if r.Rate < 0 {
			g.negative++
		}
	}

	out := make([]domain.GeoAnalytics, 0, len(groups))
	for k, g := range groups {
		out = append(out, domain.GeoAnalytics{
			Region:                k.region,
			Country:               k.country,
			TotalFees:             g.fees,
			TransactionCount:      g.count,
			RiskScore:             float64(g.negative) / float64(g.count),
			NegativeRateFrequency: float64(g.negative),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFees != out[j].TotalFees {
			return out[i].TotalFees > out[j].TotalFees
		}
		return out[i].Country < out[j].Country
	})
	return out
}
