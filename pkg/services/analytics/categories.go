package analytics

import (
	"sort"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// GetCollectionMethodAnalysis breaks fees down by collection method. Average
// is the mean charge per invoice line in the group.
func GetCollectionMethodAnalysis(records []domain.InvoiceRecord) []domain.CategoryAnalysis {
	return categoryBreakdown(records, func(r domain.InvoiceRecord) string {
		return string(r.CollectionMethod)
	}, perRecordAverage)
}

// GetUOMAnalysis breaks fees down by unit of measure. Average is the charge
// per billed unit, so groups with zero quantity report zero.
func GetUOMAnalysis(records []domain.InvoiceRecord) []domain.CategoryAnalysis {
	return categoryBreakdown(records, func(r domain.InvoiceRecord) string {
		return r.UOM
	}, perUnitAverage)
}

type averageMode int

const (
	perRecordAverage averageMode = iota
	perUnitAverage
)

func categoryBreakdown(
	records []domain.InvoiceRecord,
	key func(domain.InvoiceRecord) string,
	mode averageMode,
) []domain.CategoryAnalysis {
	type categoryTotals struct {
		total float64
		count int
		qty   float64
	}

	groups := make(map[string]*categoryTotals)
	var grandTotal float64
	for _, r := range records {
		k := key(r)
		g := groups[k]
		if g == nil {
			g = &categoryTotals{}
			groups[k] = g
		}
		g.total += r.TotalCharge
		g.count++
		g.qty += r.QtyAmt
		grandTotal += r.TotalCharge
	}

	out := make([]domain.CategoryAnalysis, 0, len(groups))
	for k, g := range groups {
		c := domain.CategoryAnalysis{
			Category:    k,
			TotalCharge: g.total,
			Count:       g.count,
			Quantity:    g.qty,
		}
		switch mode {
		case perRecordAverage:
			if g.count > 0 {
				c.Average = g.total / float64(g.count)
			}
		case perUnitAverage:
			if g.qty > 0 {
				c.Average = g.total / g.qty
			}
		}
		if grandTotal != 0 {
			c.MarketShare = g.total / grandTotal * 100
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCharge != out[j].TotalCharge {
			return out[i].TotalCharge > out[j].TotalCharge
		}
		return out[i].Category < out[j].Category
	})
	return out
}
