package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paylens/fee-insights/pkg/models/api"
	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRecord), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func testRecords() []domain.InvoiceRecord {
	return []domain.InvoiceRecord{
		{
			ID:                     "evt-1",
			Currency:               "USD",
			BillDate:               time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ServiceCodeDescription: "Clearing Fee",
			EventDesc:              "Cross Border Clearing",
			Charge:                 100,
			Rate:                   0.5,
			QtyAmt:                 200,
			InvoiceICA:             "VISA",
			Region:                 "North America",
			Country:                "United States",
			CollectionMethod:       domain.CollectionAuto,
			UOM:                    "TRANSACTION",
			InputFileName:          "f1.csv",
			InvNo:                  "INV-1",
		},
		{
			ID:                     "evt-2",
			Currency:               "EUR",
			BillDate:               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ServiceCodeDescription: "Penalty Fee",
			EventDesc:              "Late Settlement",
			Charge:                 -20,
			Rate:                   -0.1,
			QtyAmt:                 50,
			InvoiceICA:             "MAST",
			Region:                 "Europe",
			Country:                "Belgium",
			CollectionMethod:       domain.CollectionManual,
			UOM:                    "VOLUME",
			IsReversal:             true,
			InputFileName:          "f2.csv",
			InvNo:                  "INV-2",
		},
	}
}

func setupHandler(provider *mockProvider) *Handler {
	h := NewHandler(provider)
	h.now = fixedNow
	return h
}

func doRequest(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestGetKPIs(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)

	rec := doRequest(t, setupHandler(provider), "/kpis")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response api.KPISummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 80.0, response.TotalFeesPaid)
	assert.Equal(t, 2, response.NumberOfInvoices)
	provider.AssertExpectations(t)
}

func TestGetKPIs_ProviderError(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(nil, fmt.Errorf("store unavailable"))

	rec := doRequest(t, setupHandler(provider), "/kpis")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	provider.AssertExpectations(t)
}

func TestGetTopServiceCodes_LimitParam(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)

	rec := doRequest(t, setupHandler(provider), "/services?limit=1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.SeriesPoint
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "Clearing Fee", response[0].Name)
}

func TestGetCurrencyDistribution_NetParam(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)

	t.Run("absolute", func(t *testing.T) {
		rec := doRequest(t, setupHandler(provider), "/currencies")
		var response []api.SeriesPoint
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		require.Len(t, response, 2)
		assert.Equal(t, "USD", response[0].Name)
		assert.Equal(t, 100.0, response[0].Value)
	})

	t.Run("net", func(t *testing.T) {
		rec := doRequest(t, setupHandler(provider), "/currencies?net=true")
		var response []api.SeriesPoint
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		require.Len(t, response, 2)
		assert.Equal(t, -20.0, response[1].Value)
	})
}

func TestGetSchemeAnalytics(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)

	rec := doRequest(t, setupHandler(provider), "/schemes")

	var response []api.SchemeAnalytics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 2)
	assert.Equal(t, "VIS", response[0].SchemeID)
	assert.Nil(t, response[0].GrowthRate)
}

func TestGetAlertRules(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)

	rec := doRequest(t, setupHandler(provider), "/alerts")

	var response []api.AlertRule
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 4)
	for _, rule := range response {
		assert.NotEmpty(t, rule.ID)
		assert.NotEmpty(t, rule.Status)
		assert.NotEmpty(t, rule.Severity)
	}
}

func TestRoutes_AllEndpointsRespond(t *testing.T) {
	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return(testRecords(), nil)
	h := setupHandler(provider)

	paths := []string{
		"/kpis", "/trends", "/services", "/events", "/currencies",
		"/schemes", "/negative-rates", "/geo", "/volume", "/volatility",
		"/collection-methods", "/uom", "/lifecycle", "/benchmarks",
		"/alerts", "/recommendations",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, h, path)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
