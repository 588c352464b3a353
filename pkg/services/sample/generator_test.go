package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("same seed reproduces the same data set", func(t *testing.T) {
		first := Generate(rand.New(rand.NewSource(7)), DefaultConfig())
		second := Generate(rand.New(rand.NewSource(7)), DefaultConfig())

		assert.Equal(t, first, second)
	})

	t.Run("honors construction invariants", func(t *testing.T) {
		records := Generate(rand.New(rand.NewSource(1)), Config{Records: 50, Year: 2024})

		require.Len(t, records, 50)
		for _, r := range records {
			assert.InDelta(t, r.QtyAmt*r.Rate, r.Charge, 1e-6)
			assert.InDelta(t, r.Charge+r.TaxCharge, r.TotalCharge, 1e-6)
			assert.InDelta(t, r.Charge*taxRate, r.TaxCharge, 1e-6)
			assert.Equal(t, 2024, r.BillDate.Year())
			assert.Equal(t, r.TotalCharge < 0, r.IsReversal)
			assert.NotEmpty(t, r.Region)
			assert.NotEmpty(t, r.Country)
		}
	})

	t.Run("sorted by bill date descending", func(t *testing.T) {
		records := Generate(rand.New(rand.NewSource(3)), Config{Records: 100})

		for i := 1; i < len(records); i++ {
			assert.False(t, records[i-1].BillDate.Before(records[i].BillDate))
		}
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		records := Generate(rand.New(rand.NewSource(5)), Config{})

		require.Len(t, records, 500)
		assert.Equal(t, 2023, records[0].BillDate.Year())
	})
}
