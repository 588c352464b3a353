package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paylens/fee-insights/pkg/adapters"
	"github.com/paylens/fee-insights/pkg/models/domain"
	"github.com/paylens/fee-insights/pkg/services/analytics"
	"github.com/paylens/fee-insights/pkg/services/datasource"
	"github.com/rs/zerolog"
)

type Handler struct {
	provider datasource.Provider
	now      func() time.Time
}

func NewHandler(provider datasource.Provider) *Handler {
	return &Handler{
		provider: provider,
		now:      time.Now,
	}
}

// Routes mounts every dashboard endpoint on a fresh sub-router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/kpis", h.GetKPIs)
	r.Get("/trends", h.GetMonthlyTrends)
	r.Get("/services", h.GetTopServiceCodes)
	r.Get("/events", h.GetTopEventDescriptions)
	r.Get("/currencies", h.GetCurrencyDistribution)
	r.Get("/schemes", h.GetSchemeAnalytics)
	r.Get("/negative-rates", h.GetNegativeRateAnalysis)
	r.Get("/geo", h.GetGeoAnalytics)
	r.Get("/volume", h.GetVolumeAnalytics)
	r.Get("/volatility", h.GetCurrencyVolatility)
	r.Get("/collection-methods", h.GetCollectionMethodAnalysis)
	r.Get("/uom", h.GetUOMAnalysis)
	r.Get("/lifecycle", h.GetLifecycleAnalysis)
	r.Get("/benchmarks", h.GetDynamicBenchmarks)
	r.Get("/alerts", h.GetAlertRules)
	r.Get("/recommendations", h.GetRecommendations)

	return r
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) ([]domain.InvoiceRecord, bool) {
	ctx := r.Context()
	records, err := h.provider.ListInvoices(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to load invoice records")
		http.Error(w, "failed to load invoice records", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	kpis := analytics.ComputeKPIs(records, h.now())
	h.respond(w, r, adapters.MapKPISummaryDomainToApi(kpis))
}

func (h *Handler) GetMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapSeriesPointsDomainToApi(analytics.GetMonthlyTrends(records)))
}

func (h *Handler) GetTopServiceCodes(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	points := analytics.GetTopServiceCodes(records, limitParam(r))
	h.respond(w, r, adapters.MapSeriesPointsDomainToApi(points))
}

func (h *Handler) GetTopEventDescriptions(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	points := analytics.GetTopEventDescriptions(records, limitParam(r))
	h.respond(w, r, adapters.MapSeriesPointsDomainToApi(points))
}

func (h *Handler) GetCurrencyDistribution(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	var points []domain.SeriesPoint
	if r.URL.Query().Get("net") == "true" {
		points = analytics.GetNetCurrencyDistribution(records)
	} else {
		points = analytics.GetCurrencyDistribution(records)
	}
	h.respond(w, r, adapters.MapSeriesPointsDomainToApi(points))
}

func (h *Handler) GetSchemeAnalytics(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	schemes := analytics.GetSchemeAnalytics(records, nil)
	h.respond(w, r, adapters.MapSchemeAnalyticsDomainToApi(schemes))
}

func (h *Handler) GetNegativeRateAnalysis(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapNegativeRateAnalysisDomainToApi(analytics.GetNegativeRateAnalysis(records)))
}

func (h *Handler) GetGeoAnalytics(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapGeoAnalyticsDomainToApi(analytics.GetGeoAnalytics(records)))
}

func (h *Handler) GetVolumeAnalytics(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapVolumeAnalyticsDomainToApi(analytics.GetVolumeAnalytics(records)))
}

func (h *Handler) GetCurrencyVolatility(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapCurrencyVolatilityDomainToApi(analytics.GetCurrencyVolatility(records)))
}

func (h *Handler) GetCollectionMethodAnalysis(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapCategoryAnalysisDomainToApi(analytics.GetCollectionMethodAnalysis(records)))
}

func (h *Handler) GetUOMAnalysis(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapCategoryAnalysisDomainToApi(analytics.GetUOMAnalysis(records)))
}

func (h *Handler) GetLifecycleAnalysis(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapLifecycleStagesDomainToApi(analytics.GetLifecycleAnalysis(records)))
}

func (h *Handler) GetDynamicBenchmarks(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	benchmarks := analytics.GetDynamicBenchmarks(records, h.now())
	h.respond(w, r, adapters.MapBenchmarksDomainToApi(benchmarks))
}

func (h *Handler) GetAlertRules(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	rules := analytics.GetAlertRules(records, h.now(), analytics.DefaultAlertSettings())
	h.respond(w, r, adapters.MapAlertRulesDomainToApi(rules))
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	h.respond(w, r, adapters.MapRecommendationsDomainToApi(analytics.GetAgentRecommendations(records)))
}
