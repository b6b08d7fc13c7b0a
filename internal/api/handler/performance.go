package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

const (
	operationSummary    = "get_performance_summary"
	operationTimeSeries = "get_time_series"
	operationCompare    = "compare_performance"
)

// TimeSeriesResponse envelopa a série temporal
type TimeSeriesResponse struct {
	Data []*domain.TimeBucketSummary `json:"data"`
}

// GetPerformanceSummary retorna o resumo de performance do período
func GetPerformanceSummary(service performance.PerformanceReporter, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parsePerformanceFilters(r.URL.Query())
		if err != nil {
			writeInvalidParams(w, r, logger, operationSummary, err)
			return
		}

		summary, err := service.GetPerformanceSummary(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

// GetPerformanceTimeSeries retorna a série agrupada por day, week ou month
func GetPerformanceTimeSeries(service performance.PerformanceReporter, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters, err := parsePerformanceFilters(query)
		if err != nil {
			writeInvalidParams(w, r, logger, operationTimeSeries, err)
			return
		}

		granularity := domain.Granularity(query.Get("aggregate_by"))

		series, err := service.GetTimeSeries(r.Context(), granularity, filters)
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, TimeSeriesResponse{Data: series})
	})
}

// ComparePerformance compara o período com o período anterior
func ComparePerformance(service performance.PerformanceReporter, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters, err := parsePerformanceFilters(query)
		if err != nil {
			writeInvalidParams(w, r, logger, operationCompare, err)
			return
		}

		mode := domain.CompareMode(query.Get("compare_mode"))

		comparison, err := service.ComparePerformance(r.Context(), filters, mode)
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, comparison)
	})
}
