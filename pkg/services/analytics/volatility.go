package analytics

import (
	"math"
	"sort"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// Volatility action tiers, keyed off the coefficient of variation of a
// currency's monthly totals.
const (
	volatilityHighThreshold   = 0.8
	volatilityMediumThreshold = 0.5
)

// GetCurrencyVolatility buckets each currency's charges by month and scores
// the currency with the coefficient of variation (√variance / mean, population
// variance) across those monthly totals. Currencies with a single month of
// data or a non-positive mean score zero: a degenerate series tells us
// nothing about volatility.
func GetCurrencyVolatility(records []domain.InvoiceRecord) []domain.CurrencyVolatility {
	perCurrency := make(map[string]map[string]float64)
	feeTotals := make(map[string]float64)

	for _, r := range records {
		months := perCurrency[r.Currency]
		if months == nil {
			months = make(map[string]float64)
			perCurrency[r.Currency] = months
		}
		months[r.BillDate.Format(monthLabelFormat)] += r.TotalCharge
		feeTotals[r.Currency] += r.TotalCharge
	}

	out := make([]domain.CurrencyVolatility, 0, len(perCurrency))
	for currency, months := range perCurrency {
		var sum float64
		for _, total := range months {
			sum += total
		}
		mean := sum / float64(len(months))

		var variance float64
		for _, total := range months {
			variance += (total - mean) * (total - mean)
		}
		variance /= float64(len(months))

		score := 0.0
		if len(months) > 1 && mean > 0 {
			score = math.Sqrt(variance) / mean
		}

		out = append(out, domain.CurrencyVolatility{
			Currency:          currency,
			TotalFees:         feeTotals[currency],
			VolatilityScore:   score,
			MonthlyVariance:   variance,
			RecommendedAction: volatilityAction(score),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].VolatilityScore != out[j].VolatilityScore {
			return out[i].VolatilityScore > out[j].VolatilityScore
		}
		return out[i].Currency < out[j].Currency
	})
	return out
}

func volatilityAction(score float64) string {
	switch {
	case score > volatilityHighThreshold:
		return "High risk - review currency exposure"
	case score > volatilityMediumThreshold:
		return "Moderate risk - consider hedging"
	default:
		return "Low risk - monitor"
	}
}
