package analytics

import (
	"testing"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAgentRecommendations(t *testing.T) {
	t.Run("covers top service, collection gap and penalties", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{ServiceCodeDescription: "Card Processing", TotalCharge: 1000, Rate: 1, CollectionMethod: domain.CollectionAuto},
			{ServiceCodeDescription: "Card Processing", TotalCharge: 500, Rate: 1, CollectionMethod: domain.CollectionAuto},
			{ServiceCodeDescription: "Wire Transfer", TotalCharge: 400, Rate: 1, CollectionMethod: domain.CollectionManual},
			{ServiceCodeDescription: "Overdraft Fee", TotalCharge: -200, Rate: -2, CollectionMethod: domain.CollectionManual},
		}

		recs := GetAgentRecommendations(records)

		require.Len(t, recs, 3)

		top := recs[0]
		assert.Contains(t, top.Description, "Card Processing")
		assert.InDelta(t, 150, top.PotentialSavings, 1e-9) // 10% of 1500
		assert.Equal(t, domain.SeverityHigh, top.Priority)

		collection := recs[1]
		// AUTO averages 750, MANUAL averages 100; the gap scales by 100.
		assert.Contains(t, collection.Title, "MANUAL")
		assert.InDelta(t, 65000, collection.PotentialSavings, 1e-9)

		penalties := recs[2]
		assert.Contains(t, penalties.Description, "Overdraft Fee")
		assert.InDelta(t, 100, penalties.PotentialSavings, 1e-9) // 50% of 200
	})

	t.Run("empty input yields no recommendations", func(t *testing.T) {
		assert.Empty(t, GetAgentRecommendations(nil))
	})

	t.Run("single collection method yields no collection advice", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{ServiceCodeDescription: "FX", TotalCharge: 100, Rate: 1, CollectionMethod: domain.CollectionAuto},
		}

		for _, r := range GetAgentRecommendations(records) {
			assert.NotContains(t, r.Title, "collection")
		}
	})
}
