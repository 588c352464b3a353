package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paylens/fee-insights/pkg/models/api"
	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/rs/zerolog"
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

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	provider := new(mockProvider)
	provider.On("ListInvoices", mock.Anything).Return([]domain.InvoiceRecord{
		{
			ID:                     "evt-1",
			Currency:               "USD",
			BillDate:               time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ServiceCodeDescription: "Clearing Fee",
			Charge:                 100,
			Rate:                   0.5,
			InvoiceICA:             "VISA",
			Region:                 "North America",
			Country:                "United States",
			CollectionMethod:       domain.CollectionAuto,
			UOM:                    "TRANSACTION",
			InputFileName:          "f1.csv",
			InvNo:                  "INV-1",
		},
	}, nil)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Provider: provider,
			Logger:   logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "GetKPIs",
			path:           "/api/v1/dashboard/kpis",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response api.KPISummary
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 100.0, response.TotalFeesPaid)
				assert.Equal(t, 1, response.NumberOfInvoices)
			},
		},
		{
			name:           "GetMonthlyTrends",
			path:           "/api/v1/dashboard/trends",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.SeriesPoint
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response, 1)
				assert.Equal(t, "Jun 24", response[0].Name)
			},
		},
		{
			name:           "GetGeoAnalytics",
			path:           "/api/v1/dashboard/geo",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var response []api.GeoAnalytics
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response, 1)
				assert.Equal(t, "North America", response[0].Region)
			},
		},
		{
			name:           "UnknownRoute",
			path:           "/api/v1/dashboard/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			if tc.check != nil {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err, "Failed to read response body")
				tc.check(t, body)
			}
		})
	}
}
