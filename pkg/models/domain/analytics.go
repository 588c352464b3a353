package domain

// KPISummary holds the headline figures shown at the top of the dashboard.
type KPISummary struct {
	TotalFeesPaid    float64
	AverageRate      float64
	NumberOfInvoices int
	MonthlyGrowth    float64
}

// SeriesPoint is one labeled value in a chart series (a trend bucket,
// a ranked service, a currency slice).
type SeriesPoint struct {
	Name  string
	Value float64
}

// SchemeAnalytics aggregates fees per card-scheme prefix. GrowthRate is nil
// when no growth model is available: there is no per-scheme time series to
// derive one from, so callers must inject a source or render it as unknown.
type SchemeAnalytics struct {
	SchemeID         string
	TotalFees        float64
	TransactionCount float64
	GrowthRate       *float64
	MarketShare      float64
}

type NegativeRateAnalysis struct {
	PercentageOfNegativeRates float64
	TotalNegativeCharges      float64
	TopNegativeServices       []SeriesPoint
}

// GeoAnalytics aggregates fees per (region, country) pair. RiskScore is the
// fraction of the group's records carrying a negative rate — a frequency
// proxy, not a calibrated model.
type GeoAnalytics struct {
	Region                string
	Country               string
	TotalFees             float64
	TransactionCount      int
	RiskScore             float64
	NegativeRateFrequency float64
}

// VolumeAnalytics counts distinct input files and invoice numbers per month.
// A month is anomalous when its mean-relative deviation exceeds the fixed
// threshold in the analytics package.
type VolumeAnalytics struct {
	Month        string
	FileCount    int
	InvoiceCount int
	IsAnomaly    bool
	AnomalyScore float64
}

// CurrencyVolatility scores a currency by the coefficient of variation of
// its monthly charge totals.
type CurrencyVolatility struct {
	Currency          string
	TotalFees         float64
	VolatilityScore   float64
	MonthlyVariance   float64
	RecommendedAction string
}

// CategoryAnalysis is the shared shape for per-category breakdowns
// (collection method, unit of measure).
type CategoryAnalysis struct {
	Category    string
	TotalCharge float64
	Count       int
	Quantity    float64
	Average     float64
	MarketShare float64
}

type LifecycleStage struct {
	Stage       string
	Count       int
	Percentage  float64
	DropOffRate float64
}

type AgentRecommendation struct {
	Title            string
	Description      string
	Priority         Severity
	PotentialSavings float64
}

type DynamicBenchmarks struct {
	Percentile75       float64
	Percentile90       float64
	Percentile95       float64
	YearOverYearGrowth float64
	AboveP75Count      int
}
