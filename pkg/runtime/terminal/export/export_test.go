package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *domain.Report {
	return &domain.Report{
		Title:       "Scheme Fee Analytics",
		GeneratedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		TotalAmount: 1234.56,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title:   "Key Performance Indicators",
				Summary: map[string]any{"Invoices": 500},
				Details: []domain.ReportDetail{
					{Name: "Total Fees Paid", Value: "1234.56", Description: "Sum of all invoice charges"},
					{Name: "Monthly Growth", Value: "5.0", Unit: "%", Description: "Current month vs previous month"},
				},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Section", "Name", "Value", "Unit", "Description"}, rows[0])
	assert.Equal(t, "Key Performance Indicators", rows[1][0])
	assert.Equal(t, "Total Fees Paid", rows[1][1])
	assert.Equal(t, "%", rows[2][3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testReport()))

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Scheme Fee Analytics", decoded.Title)
	assert.Equal(t, 1234.56, decoded.TotalAmount)
	require.Len(t, decoded.Sections, 1)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testReport()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 100)
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(testReport()))

	out := buf.String()
	assert.Contains(t, out, "Scheme Fee Analytics")
	assert.Contains(t, out, "=== Key Performance Indicators ===")
	assert.Contains(t, out, "Total Fees Paid")
	assert.Contains(t, out, "USD 1234.56")
}
