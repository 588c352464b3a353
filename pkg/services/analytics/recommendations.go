package analytics

import (
	"fmt"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// GetAgentRecommendations produces text suggestions with rough savings
// figures. The savings are fixed-percentage heuristics over observed totals,
// not forecasts.
func GetAgentRecommendations(records []domain.InvoiceRecord) []domain.AgentRecommendation {
	if len(records) == 0 {
		return nil
	}

	var recs []domain.AgentRecommendation

	if top := GetTopServiceCodes(records, 1); len(top) > 0 && top[0].Value > 0 {
		recs = append(recs, domain.AgentRecommendation{
			Title: "Negotiate top service pricing",
			Description: fmt.Sprintf(
				"%q is the largest fee driver at %.2f; its rate card is the biggest single negotiation lever.",
				top[0].Name, top[0].Value),
			Priority:         domain.SeverityHigh,
			PotentialSavings: top[0].Value * 0.10,
		})
	}

	methods := GetCollectionMethodAnalysis(records)
	if len(methods) == 2 {
		cheaper, dearer := methods[0], methods[1]
		if dearer.Average < cheaper.Average {
			cheaper, dearer = dearer, cheaper
		}
		if gap := dearer.Average - cheaper.Average; gap > 0 {
			recs = append(recs, domain.AgentRecommendation{
				Title: fmt.Sprintf("Prefer %s collection", cheaper.Category),
				Description: fmt.Sprintf(
					"%s collection averages %.2f per line against %.2f for %s; shifting volume narrows the gap.",
					cheaper.Category, cheaper.Average, dearer.Average, dearer.Category),
				Priority:         domain.SeverityMedium,
				PotentialSavings: gap * 100,
			})
		}
	}

	negative := GetNegativeRateAnalysis(records)
	if len(negative.TopNegativeServices) > 0 {
		worst := negative.TopNegativeServices[0]
		recs = append(recs, domain.AgentRecommendation{
			Title: "Investigate penalty-rate services",
			Description: fmt.Sprintf(
				"%q carries %.2f in penalty-rate charges; root-causing the penalties could recover a large share.",
				worst.Name, worst.Value),
			Priority:         domain.SeverityHigh,
			PotentialSavings: negative.TotalNegativeCharges * 0.5,
		})
	}

	return recs
}
