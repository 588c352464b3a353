package analytics

import (
	"fmt"
	"time"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// AlertSettings contains the configurable thresholds for alert evaluation.
type AlertSettings struct {
	// SpendBenchmarkFactor multiplies the 75th percentile charge to form the
	// current-month spend threshold (default: 1.2).
	SpendBenchmarkFactor float64
	// NegativeRatePercent is the maximum tolerated share of absolute charge
	// volume on negative rates, in percent (default: 15).
	NegativeRatePercent float64
	// VolatilityScore is the coefficient-of-variation threshold for any
	// single currency (default: 0.8).
	VolatilityScore float64
}

// DefaultAlertSettings returns the thresholds the dashboard ships with.
func DefaultAlertSettings() AlertSettings {
	return AlertSettings{
		SpendBenchmarkFactor: 1.2,
		NegativeRatePercent:  15,
		VolatilityScore:      0.8,
	}
}

// GetAlertRules evaluates the fixed rule set against the record collection.
// The volume-spike rule has no backing computation yet and always reports
// AlertNotImplemented.
func GetAlertRules(records []domain.InvoiceRecord, now time.Time, settings AlertSettings) []domain.AlertRule {
	rules := make([]domain.AlertRule, 0, 4)

	// Current-month spend against the benchmark percentile. Month matching
	// follows the KPI convention: month number only, year ignored.
	benchmarks := GetDynamicBenchmarks(records, now)
	spendThreshold := benchmarks.Percentile75 * settings.SpendBenchmarkFactor

	currentMonth := now.Month()
	var currentTotal float64
	for _, r := range records {
		if r.BillDate.Month() == currentMonth {
			currentTotal += r.TotalCharge
		}
	}

	rules = append(rules, domain.AlertRule{
		ID:        "monthly_spend_benchmark",
		Title:     "Monthly Spend Above Benchmark",
		Condition: fmt.Sprintf("current month total exceeds %.0f%% of the 75th percentile charge", settings.SpendBenchmarkFactor*100),
		Threshold: spendThreshold,
		Status:    triggeredWhen(currentTotal > spendThreshold && spendThreshold > 0),
		Severity:  domain.SeverityHigh,
		Value:     &currentTotal,
	})

	negative := GetNegativeRateAnalysis(records)
	negativeShare := negative.PercentageOfNegativeRates
	rules = append(rules, domain.AlertRule{
		ID:        "negative_rate_share",
		Title:     "High Negative Rate Share",
		Condition: fmt.Sprintf("negative-rate charges exceed %.0f%% of absolute volume", settings.NegativeRatePercent),
		Threshold: settings.NegativeRatePercent,
		Status:    triggeredWhen(negativeShare > settings.NegativeRatePercent),
		Severity:  domain.SeverityMedium,
		Value:     &negativeShare,
	})

	rules = append(rules, domain.AlertRule{
		ID:        "volume_spike",
		Title:     "Volume Spike Detection",
		Condition: "month-over-month invoice volume spikes beyond expected bounds",
		Status:    domain.AlertNotImplemented,
		Severity:  domain.SeverityLow,
	})

	var maxVolatility float64
	for _, cv := range GetCurrencyVolatility(records) {
		if cv.VolatilityScore > maxVolatility {
			maxVolatility = cv.VolatilityScore
		}
	}
	rules = append(rules, domain.AlertRule{
		ID:        "currency_volatility",
		Title:     "Currency Volatility Warning",
		Condition: fmt.Sprintf("any currency's volatility score exceeds %.1f", settings.VolatilityScore),
		Threshold: settings.VolatilityScore,
		Status:    triggeredWhen(maxVolatility > settings.VolatilityScore),
		Severity:  domain.SeverityHigh,
		Value:     &maxVolatility,
	})

	return rules
}

func triggeredWhen(cond bool) domain.AlertStatus {
	if cond {
		return domain.AlertTriggered
	}
	return domain.AlertOK
}
