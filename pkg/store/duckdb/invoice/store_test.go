package invoice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/paylens/fee-insights/pkg/models/store"
	"github.com/paylens/fee-insights/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupTestDB(t *testing.T) *sql.DB {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	return db
}

func setupFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: store,
	}
}

func sampleRow(id string, billDate time.Time, charge float64) store.InvoiceRow {
	return store.InvoiceRow{
		EventID:                id,
		TotalCosts:             charge,
		Ccy:                    "USD",
		BillDate:               billDate,
		ServiceCodeDescription: "Clearing Fee",
		EventDesc:              "Cross Border Clearing",
		QtyAmt:                 100,
		Rate:                   0.5,
		Charge:                 charge,
		TaxCharge:              charge * 0.08,
		TotalCharge:            charge * 1.08,
		InvoiceICA:             "VISA",
		CollectionMethod:       "AUTO",
		InputFileName:          "scheme_fees_2024_01_batch1.csv",
		InvNo:                  "INV-202401-1",
		UOM:                    "TRANSACTION",
	}
}

func TestInvoiceStore_Add(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - add rows", func(t *testing.T) {
		rows := []store.InvoiceRow{
			sampleRow("evt-1", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 50),
			sampleRow("evt-2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 75),
		}

		err := f.store.Add(ctx, rows)
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM invoice_data").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("success - empty rows", func(t *testing.T) {
		err := f.store.Add(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("error - duplicate rows", func(t *testing.T) {
		rows := []store.InvoiceRow{
			sampleRow("dup", time.Now(), 10),
		}

		err := f.store.Add(ctx, rows)
		require.NoError(t, err)

		err = f.store.Add(ctx, rows)
		assert.Error(t, err)
	})
}

func TestInvoiceStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	rows := []store.InvoiceRow{
		sampleRow("evt-old", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 30),
		sampleRow("evt-new", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 60),
	}
	require.NoError(t, f.store.Add(ctx, rows))

	listed, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest bill date first
	assert.Equal(t, "evt-new", listed[0].EventID)
	assert.Equal(t, "evt-old", listed[1].EventID)
	assert.Equal(t, 60.0, listed[0].Charge)
}

func TestInvoiceStore_GetStats(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		stats, err := f.store.GetStats(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.RecordsCount)
		assert.Nil(t, stats.FirstRecordTime)
	})

	t.Run("with records", func(t *testing.T) {
		earliest := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		rows := []store.InvoiceRow{
			sampleRow("evt-1", earliest, 30),
			sampleRow("evt-2", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 60),
		}
		require.NoError(t, f.store.Add(ctx, rows))

		stats, err := f.store.GetStats(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.RecordsCount)
		require.NotNil(t, stats.FirstRecordTime)
		assert.True(t, stats.FirstRecordTime.Equal(earliest))
	})

	t.Run("with since filter", func(t *testing.T) {
		since := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		stats, err := f.store.GetStats(ctx, &since)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.RecordsCount)
	})
}
