package report

import (
	"fmt"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/services/analytics"
)

// BuildDashboardReport assembles the full analytics run into a report
// document the terminal and export reporters can render.
func BuildDashboardReport(records []domain.InvoiceRecord, now time.Time) *domain.Report {
	kpis := analytics.ComputeKPIs(records, now)

	report := &domain.Report{
		Title:       "Scheme Fee Analytics",
		GeneratedAt: now,
		TotalAmount: kpis.TotalFeesPaid,
		Currency:    dominantCurrency(records),
		Sections: []domain.ReportSection{
			buildKPISection(kpis),
			buildTrendSection(records),
			buildSchemeSection(records),
			buildNegativeRateSection(records),
			buildGeoSection(records),
			buildVolatilitySection(records),
			buildLifecycleSection(records),
			buildBenchmarkSection(records, now),
			buildAlertSection(records, now),
			buildRecommendationSection(records),
		},
	}

	return report
}

func dominantCurrency(records []domain.InvoiceRecord) string {
	dist := analytics.GetCurrencyDistribution(records)
	if len(dist) == 0 {
		return "USD"
	}
	return dist[0].Name
}

func buildKPISection(kpis domain.KPISummary) domain.ReportSection {
	return domain.ReportSection{
		Title: "Key Performance Indicators",
		Summary: map[string]any{
			"Invoices": kpis.NumberOfInvoices,
		},
		Details: []domain.ReportDetail{
			{Name: "Total Fees Paid", Value: fmt.Sprintf("%.2f", kpis.TotalFeesPaid), Description: "Sum of all invoice charges"},
			{Name: "Average Rate", Value: fmt.Sprintf("%.4f", kpis.AverageRate), Description: "Mean fee rate across records"},
			{Name: "Monthly Growth", Value: fmt.Sprintf("%.1f", kpis.MonthlyGrowth), Unit: "%", Description: "Current month vs previous month"},
		},
	}
}

func buildTrendSection(records []domain.InvoiceRecord) domain.ReportSection {
	trends := analytics.GetMonthlyTrends(records)
	details := make([]domain.ReportDetail, 0, len(trends))
	for _, p := range trends {
		details = append(details, domain.ReportDetail{
			Name:        p.Name,
			Value:       fmt.Sprintf("%.2f", p.Value),
			Description: "Monthly charge total",
		})
	}

	return domain.ReportSection{
		Title: "Monthly Spend",
		Summary: map[string]any{
			"Months": len(trends),
		},
		Details: details,
	}
}

func buildSchemeSection(records []domain.InvoiceRecord) domain.ReportSection {
	schemes := analytics.GetSchemeAnalytics(records, nil)
	details := make([]domain.ReportDetail, 0, len(schemes))
	for _, s := range schemes {
		details = append(details, domain.ReportDetail{
			Name:        s.SchemeID,
			Value:       fmt.Sprintf("%.2f", s.TotalFees),
			Description: fmt.Sprintf("%.0f transactions, %.1f%% market share", s.TransactionCount, s.MarketShare),
		})
	}

	return domain.ReportSection{
		Title: "Card Schemes",
		Summary: map[string]any{
			"Schemes": len(schemes),
		},
		Details: details,
	}
}

func buildNegativeRateSection(records []domain.InvoiceRecord) domain.ReportSection {
	neg := analytics.GetNegativeRateAnalysis(records)
	details := make([]domain.ReportDetail, 0, len(neg.TopNegativeServices))
	for _, p := range neg.TopNegativeServices {
		details = append(details, domain.ReportDetail{
			Name:        p.Name,
			Value:       fmt.Sprintf("%.2f", p.Value),
			Description: "Absolute charge volume on negative rates",
		})
	}

	return domain.ReportSection{
		Title: "Negative Rates",
		Summary: map[string]any{
			"Negative share": fmt.Sprintf("%.1f%%", neg.PercentageOfNegativeRates),
			"Total credits":  fmt.Sprintf("%.2f", neg.TotalNegativeCharges),
		},
		Details: details,
	}
}

func buildGeoSection(records []domain.InvoiceRecord) domain.ReportSection {
	groups := analytics.GetGeoAnalytics(records)
	details := make([]domain.ReportDetail, 0, len(groups))
	for _, g := range groups {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s / %s", g.Region, g.Country),
			Value:       fmt.Sprintf("%.2f", g.TotalFees),
			Description: fmt.Sprintf("%d transactions, risk %.2f", g.TransactionCount, g.RiskScore),
		})
	}

	return domain.ReportSection{
		Title: "Geographic Distribution",
		Summary: map[string]any{
			"Regions": len(groups),
		},
		Details: details,
	}
}

func buildVolatilitySection(records []domain.InvoiceRecord) domain.ReportSection {
	currencies := analytics.GetCurrencyVolatility(records)
	details := make([]domain.ReportDetail, 0, len(currencies))
	for _, c := range currencies {
		details = append(details, domain.ReportDetail{
			Name:        c.Currency,
			Value:       fmt.Sprintf("%.3f", c.VolatilityScore),
			Description: c.RecommendedAction,
		})
	}

	return domain.ReportSection{
		Title: "Currency Volatility",
		Summary: map[string]any{
			"Currencies": len(currencies),
		},
		Details: details,
	}
}

func buildLifecycleSection(records []domain.InvoiceRecord) domain.ReportSection {
	stages := analytics.GetLifecycleAnalysis(records)
	details := make([]domain.ReportDetail, 0, len(stages))
	for _, s := range stages {
		details = append(details, domain.ReportDetail{
			Name:        s.Stage,
			Value:       s.Count,
			Description: fmt.Sprintf("%.1f%% of total, %.1f%% drop-off", s.Percentage, s.DropOffRate),
		})
	}

	return domain.ReportSection{
		Title:   "Transaction Lifecycle",
		Summary: map[string]any{},
		Details: details,
	}
}

func buildBenchmarkSection(records []domain.InvoiceRecord, now time.Time) domain.ReportSection {
	b := analytics.GetDynamicBenchmarks(records, now)
	return domain.ReportSection{
		Title: "Benchmarks",
		Summary: map[string]any{
			"Above P75": b.AboveP75Count,
		},
		Details: []domain.ReportDetail{
			{Name: "75th Percentile", Value: fmt.Sprintf("%.2f", b.Percentile75), Description: "Charge amount benchmark"},
			{Name: "90th Percentile", Value: fmt.Sprintf("%.2f", b.Percentile90), Description: "Charge amount benchmark"},
			{Name: "95th Percentile", Value: fmt.Sprintf("%.2f", b.Percentile95), Description: "Charge amount benchmark"},
			{Name: "Year over Year Growth", Value: fmt.Sprintf("%.1f", b.YearOverYearGrowth), Unit: "%", Description: "Latest year vs previous year"},
		},
	}
}

func buildAlertSection(records []domain.InvoiceRecord, now time.Time) domain.ReportSection {
	rules := analytics.GetAlertRules(records, now, analytics.DefaultAlertSettings())
	triggered := 0
	details := make([]domain.ReportDetail, 0, len(rules))
	for _, r := range rules {
		if r.Status == domain.AlertTriggered {
			triggered++
		}
		value := "n/a"
		if r.Value != nil {
			value = fmt.Sprintf("%.2f", *r.Value)
		}
		details = append(details, domain.ReportDetail{
			Name:        r.Title,
			Value:       r.Status.String(),
			Description: fmt.Sprintf("%s (observed %s, threshold %.2f)", r.Condition, value, r.Threshold),
		})
	}

	return domain.ReportSection{
		Title: "Alerts",
		Summary: map[string]any{
			"Triggered": triggered,
		},
		Details: details,
	}
}

func buildRecommendationSection(records []domain.InvoiceRecord) domain.ReportSection {
	recs := analytics.GetAgentRecommendations(records)
	details := make([]domain.ReportDetail, 0, len(recs))
	for _, r := range recs {
		details = append(details, domain.ReportDetail{
			Name:        r.Title,
			Value:       fmt.Sprintf("%.2f", r.PotentialSavings),
			Description: fmt.Sprintf("[%s] %s", r.Priority.String(), r.Description),
		})
	}

	return domain.ReportSection{
		Title: "Recommendations",
		Summary: map[string]any{
			"Count": len(recs),
		},
		Details: details,
	}
}
