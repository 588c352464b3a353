package api

type KPISummary struct {
	TotalFeesPaid    float64 `json:"totalFeesPaid"`
	AverageRate      float64 `json:"averageRate"`
	NumberOfInvoices int     `json:"numberOfInvoices"`
	MonthlyGrowth    float64 `json:"monthlyGrowth"`
}

type SeriesPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type SchemeAnalytics struct {
	SchemeID         string   `json:"schemeId"`
	TotalFees        float64  `json:"totalFees"`
	TransactionCount float64  `json:"transactionCount"`
	GrowthRate       *float64 `json:"growthRate,omitempty"`
	MarketShare      float64  `json:"marketShare"`
}

type NegativeRateAnalysis struct {
	PercentageOfNegativeRates float64       `json:"percentageOfNegativeRates"`
	TotalNegativeCharges      float64       `json:"totalNegativeCharges"`
	TopNegativeServices       []SeriesPoint `json:"topNegativeServices"`
}

type GeoAnalytics struct {
	Region                string  `json:"region"`
	Country               string  `json:"country"`
	TotalFees             float64 `json:"totalFees"`
	TransactionCount      int     `json:"transactionCount"`
	RiskScore             float64 `json:"riskScore"`
	NegativeRateFrequency float64 `json:"negativeRateFrequency"`
}

type VolumeAnalytics struct {
	Month        string  `json:"month"`
	FileCount    int     `json:"fileCount"`
	InvoiceCount int     `json:"invoiceCount"`
	IsAnomaly    bool    `json:"isAnomaly"`
	AnomalyScore float64 `json:"anomalyScore"`
}

type CurrencyVolatility struct {
	Currency          string  `json:"currency"`
	TotalFees         float64 `json:"totalFees"`
	VolatilityScore   float64 `json:"volatilityScore"`
	MonthlyVariance   float64 `json:"monthlyVariance"`
	RecommendedAction string  `json:"recommendedAction"`
}

type CategoryAnalysis struct {
	Category    string  `json:"category"`
	TotalCharge float64 `json:"totalCharge"`
	Count       int     `json:"count"`
	Quantity    float64 `json:"quantity"`
	Average     float64 `json:"average"`
	MarketShare float64 `json:"marketShare"`
}

type LifecycleStage struct {
	Stage       string  `json:"stage"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
	DropOffRate float64 `json:"dropOffRate"`
}

type AgentRecommendation struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Priority         string  `json:"priority"`
	PotentialSavings float64 `json:"potentialSavings"`
}

type DynamicBenchmarks struct {
	Percentile75       float64 `json:"percentile75"`
	Percentile90       float64 `json:"percentile90"`
	Percentile95       float64 `json:"percentile95"`
	YearOverYearGrowth float64 `json:"yearOverYearGrowth"`
	AboveP75Count      int     `json:"aboveP75Count"`
}

type AlertRule struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Condition string   `json:"condition"`
	Threshold float64  `json:"threshold"`
	Status    string   `json:"status"`
	Severity  string   `json:"severity"`
	Value     *float64 `json:"value,omitempty"`
}
