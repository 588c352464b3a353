package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// anomalyThreshold is the mean-relative deviation above which a month's
// volume is flagged.
const anomalyThreshold = 0.3

// GetVolumeAnalytics counts distinct input files and invoice numbers per
// month and flags months whose counts deviate from the across-month means.
// The anomaly score averages the two relative deviations; a zero mean
// contributes zero deviation.
func GetVolumeAnalytics(records []domain.InvoiceRecord) []domain.VolumeAnalytics {
	type monthSets struct {
		files    map[string]struct{}
		invoices map[string]struct{}
	}

	months := make(map[string]*monthSets)
	for _, r := range records {
		label := r.BillDate.Format(monthLabelFormat)
		m := months[label]
		if m == nil {
			m = &monthSets{
				files:    make(map[string]struct{}),
				invoices: make(map[string]struct{}),
			}
			months[label] = m
		}
		m.files[r.InputFileName] = struct{}{}
		m.invoices[r.InvNo] = struct{}{}
	}

	if len(months) == 0 {
		return nil
	}

	labels := make([]string, 0, len(months))
	var fileSum, invoiceSum float64
	for label, m := range months {
		labels = append(labels, label)
		fileSum += float64(len(m.files))
		invoiceSum += float64(len(m.invoices))
	}
	meanFiles := fileSum / float64(len(months))
	meanInvoices := invoiceSum / float64(len(months))

	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse(monthLabelFormat, labels[i])
		tj, _ := time.Parse(monthLabelFormat, labels[j])
		return ti.Before(tj)
	})

	out := make([]domain.VolumeAnalytics, 0, len(labels))
	for _, label := range labels {
		m := months[label]
		fileDev := relDeviation(float64(len(m.files)), meanFiles)
		invoiceDev := relDeviation(float64(len(m.invoices)), meanInvoices)
		score := (fileDev + invoiceDev) / 2

		out = append(out, domain.VolumeAnalytics{
			Month:        label,
			FileCount:    len(m.files),
			InvoiceCount: len(m.invoices),
			IsAnomaly:    score > anomalyThreshold,
			AnomalyScore: score,
		})
	}
	return out
}

func relDeviation(value, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return math.Abs(value-mean) / mean
}
