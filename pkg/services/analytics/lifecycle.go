package analytics

import "github.com/paylens/fee-insights/pkg/models/domain"

// Funnel stage names, in order.
const (
	StageTotal     = "Total Transactions"
	StageCharged   = "Charged"
	StageReversed  = "Reversed"
	StageFinalPaid = "Final Paid"
)

// GetLifecycleAnalysis computes the four-stage transaction funnel.
// Percentages are relative to the total stage; drop-off rates are relative to
// the previous stage's count, so the reversed stage measures against charged
// rather than total.
func GetLifecycleAnalysis(records []domain.InvoiceRecord) []domain.LifecycleStage {
	total := len(records)

	var charged, reversed int
	for _, r := range records {
		if r.TotalCharge > 0 {
			charged++
		}
		if r.IsReversal {
			reversed++
		}
	}
	finalPaid := charged - reversed

	counts := []struct {
		name  string
		count int
	}{
		{StageTotal, total},
		{StageCharged, charged},
		{StageReversed, reversed},
		{StageFinalPaid, finalPaid},
	}

	stages := make([]domain.LifecycleStage, 0, len(counts))
	for i, c := range counts {
		stage := domain.LifecycleStage{Stage: c.name, Count: c.count}
		if total > 0 {
			stage.Percentage = float64(c.count) / float64(total) * 100
		}
		if i > 0 && counts[i-1].count > 0 {
			prev := counts[i-1].count
			stage.DropOffRate = float64(prev-c.count) / float64(prev) * 100
		}
		stages = append(stages, stage)
	}
	return stages
}
