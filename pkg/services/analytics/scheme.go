package analytics

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// GetSchemeAnalytics aggregates fees per card-scheme key, derived from the
// uppercased first three characters of the service code description. Quantity
// stands in for transaction count since line items carry no per-transaction
// breakdown. No per-scheme time series exists, so GrowthRate stays nil unless
// the caller injects a rand source, in which case a mock value in [-10, 10)
// fills it.
func GetSchemeAnalytics(records []domain.InvoiceRecord, rng *rand.Rand) []domain.SchemeAnalytics {
	type schemeTotals struct {
		fees float64
		qty  float64
	}

	totals := make(map[string]*schemeTotals)
	var grandTotal float64
	for _, r := range records {
		key := schemeKey(r.ServiceCodeDescription)
		st := totals[key]
		if st == nil {
			st = &schemeTotals{}
			totals[key] = st
		}
		st.fees += r.TotalCharge
		st.qty += r.QtyAmt
		grandTotal += r.TotalCharge
	}

	out := make([]domain.SchemeAnalytics, 0, len(totals))
	for id, st := range totals {
		s := domain.SchemeAnalytics{
			SchemeID:         id,
			TotalFees:        st.fees,
			TransactionCount: st.qty,
		}
		if grandTotal != 0 {
			s.MarketShare = st.fees / grandTotal * 100
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFees != out[j].TotalFees {
			return out[i].TotalFees > out[j].TotalFees
		}
		return out[i].SchemeID < out[j].SchemeID
	})

	// Fill mock growth after sorting so a given seed always maps the same
	// value to the same scheme.
	if rng != nil {
		for i := range out {
			g := rng.Float64()*20 - 10
			out[i].GrowthRate = &g
		}
	}
	return out
}

func schemeKey(desc string) string {
	if len(desc) > 3 {
		desc = desc[:3]
	}
	return strings.ToUpper(desc)
}

// GetNegativeRateAnalysis measures how much of the absolute charge volume
// sits on penalty (negative) rates, and which services drive it.
func GetNegativeRateAnalysis(records []domain.InvoiceRecord) domain.NegativeRateAnalysis {
	var negTotal, allTotal float64
	perService := make(map[string]float64)

	for _, r := range records {
		abs := math.Abs(r.TotalCharge)
		allTotal += abs
		if r.Rate < 0 {
			negTotal += abs
			perService[r.ServiceCodeDescription] += abs
		}
	}

	analysis := domain.NegativeRateAnalysis{
		TotalNegativeCharges: negTotal,
		TopNegativeServices:  rankSeries(perService, 5),
	}
	if allTotal > 0 {
		analysis.PercentageOfNegativeRates = negTotal / allTotal * 100
	}
	return analysis
}
