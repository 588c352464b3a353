package adapters

import (
	"github.com/paylens/fee-insights/pkg/models/api"
	"github.com/paylens/fee-insights/pkg/models/domain"
)

func MapKPISummaryDomainToApi(s domain.KPISummary) api.KPISummary {
	return api.KPISummary{
		TotalFeesPaid:    s.TotalFeesPaid,
		AverageRate:      s.AverageRate,
		NumberOfInvoices: s.NumberOfInvoices,
		MonthlyGrowth:    s.MonthlyGrowth,
	}
}

func MapSeriesPointsDomainToApi(points []domain.SeriesPoint) []api.SeriesPoint {
	out := make([]api.SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.SeriesPoint{Name: p.Name, Value: p.Value})
	}
	return out
}

func MapSchemeAnalyticsDomainToApi(schemes []domain.SchemeAnalytics) []api.SchemeAnalytics {
	out := make([]api.SchemeAnalytics, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, api.SchemeAnalytics{
			SchemeID:         s.SchemeID,
			TotalFees:        s.TotalFees,
			TransactionCount: s.TransactionCount,
			GrowthRate:       s.GrowthRate,
			MarketShare:      s.MarketShare,
		})
	}
	return out
}

func MapNegativeRateAnalysisDomainToApi(a domain.NegativeRateAnalysis) api.NegativeRateAnalysis {
	return api.NegativeRateAnalysis{
		PercentageOfNegativeRates: a.PercentageOfNegativeRates,
		TotalNegativeCharges:      a.TotalNegativeCharges,
		TopNegativeServices:       MapSeriesPointsDomainToApi(a.TopNegativeServices),
	}
}

func MapGeoAnalyticsDomainToApi(groups []domain.GeoAnalytics) []api.GeoAnalytics {
	out := make([]api.GeoAnalytics, 0, len(groups))
	for _, g := range groups {
		out = append(out, api.GeoAnalytics{
			Region:                g.Region,
			Country:               g.Country,
			TotalFees:             g.TotalFees,
			TransactionCount:      g.TransactionCount,
			RiskScore:             g.RiskScore,
			NegativeRateFrequency: g.NegativeRateFrequency,
		})
	}
	return out
}

func MapVolumeAnalyticsDomainToApi(months []domain.VolumeAnalytics) []api.VolumeAnalytics {
	out := make([]api.VolumeAnalytics, 0, len(months))
	for _, m := range months {
		out = append(out, api.VolumeAnalytics{
			Month:        m.Month,
			FileCount:    m.FileCount,
			InvoiceCount: m.InvoiceCount,
			IsAnomaly:    m.IsAnomaly,
			AnomalyScore: m.AnomalyScore,
		})
	}
	return out
}

func MapCurrencyVolatilityDomainToApi(currencies []domain.CurrencyVolatility) []api.CurrencyVolatility {
	out := make([]api.CurrencyVolatility, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, api.CurrencyVolatility{
			Currency:          c.Currency,
			TotalFees:         c.TotalFees,
			VolatilityScore:   c.VolatilityScore,
			MonthlyVariance:   c.MonthlyVariance,
			RecommendedAction: c.RecommendedAction,
		})
	}
	return out
}

func MapCategoryAnalysisDomainToApi(categories []domain.CategoryAnalysis) []api.CategoryAnalysis {
	out := make([]api.CategoryAnalysis, 0, len(categories))
	for _, c := range categories {
		out = append(out, api.CategoryAnalysis{
			Category:    c.Category,
			TotalCharge: c.TotalCharge,
			Count:       c.Count,
			Quantity:    c.Quantity,
			Average:     c.Average,
			MarketShare: c.MarketShare,
		})
	}
	return out
}

func MapLifecycleStagesDomainToApi(stages []domain.LifecycleStage) []api.LifecycleStage {
	out := make([]api.LifecycleStage, 0, len(stages))
	for _, s := range stages {
		out = append(out, api.LifecycleStage{
			Stage:       s.Stage,
			Count:       s.Count,
			Percentage:  s.Percentage,
			DropOffRate: s.DropOffRate,
		})
	}
	return out
}

func MapRecommendationsDomainToApi(recs []domain.AgentRecommendation) []api.AgentRecommendation {
	out := make([]api.AgentRecommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, api.AgentRecommendation{
			Title:            r.Title,
			Description:      r.Description,
			Priority:         r.Priority.String(),
			PotentialSavings: r.PotentialSavings,
		})
	}
	return out
}

func MapBenchmarksDomainToApi(b domain.DynamicBenchmarks) api.DynamicBenchmarks {
	return api.DynamicBenchmarks{
		Percentile75:       b.Percentile75,
		Percentile90:       b.Percentile90,
		Percentile95:       b.Percentile95,
		YearOverYearGrowth: b.YearOverYearGrowth,
		AboveP75Count:      b.AboveP75Count,
	}
}

func MapAlertRulesDomainToApi(rules []domain.AlertRule) []api.AlertRule {
	out := make([]api.AlertRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, api.AlertRule{
			ID:        r.ID,
			Title:     r.Title,
			Condition: r.Condition,
			Threshold: r.Threshold,
			Status:    r.Status.String(),
			Severity:  r.Severity.String(),
			Value:     r.Value,
		})
	}
	return out
}
