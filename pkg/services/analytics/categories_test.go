package analytics

import (
	"testing"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCollectionMethodAnalysis(t *testing.T) {
	records := []domain.InvoiceRecord{
		{CollectionMethod: domain.CollectionAuto, TotalCharge: 60, QtyAmt: 2},
		{CollectionMethod: domain.CollectionAuto, TotalCharge: 20, QtyAmt: 2},
		{CollectionMethod: domain.CollectionManual, TotalCharge: 20, QtyAmt: 1},
	}

	analysis := GetCollectionMethodAnalysis(records)

	require.Len(t, analysis, 2)
	auto := analysis[0]
	assert.Equal(t, "AUTO", auto.Category)
	assert.InDelta(t, 80, auto.TotalCharge, 1e-9)
	assert.Equal(t, 2, auto.Count)
	assert.InDelta(t, 40, auto.Average, 1e-9)
	assert.InDelta(t, 80, auto.MarketShare, 1e-9)

	manual := analysis[1]
	assert.Equal(t, "MANUAL", manual.Category)
	assert.InDelta(t, 20, manual.MarketShare, 1e-9)
}

func TestGetUOMAnalysis(t *testing.T) {
	t.Run("average is per billed unit", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{UOM: "TRANSACTION", TotalCharge: 100, QtyAmt: 50},
			{UOM: "TRANSACTION", TotalCharge: 100, QtyAmt: 50},
			{UOM: "VOLUME", TotalCharge: 30, QtyAmt: 10},
		}

		analysis := GetUOMAnalysis(records)

		require.Len(t, analysis, 2)
		assert.Equal(t, "TRANSACTION", analysis[0].Category)
		assert.InDelta(t, 2, analysis[0].Average, 1e-9)
		assert.InDelta(t, 100, analysis[0].Quantity, 1e-9)
	})

	t.Run("zero quantity group reports zero average", func(t *testing.T) {
		records := []domain.InvoiceRecord{
			{UOM: "FLAT", TotalCharge: 10, QtyAmt: 0},
		}

		analysis := GetUOMAnalysis(records)

		require.Len(t, analysis, 1)
		assert.Zero(t, analysis[0].Average)
	})
}
