package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-performance-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

func Healthcheck(db Pinger, logger log.Logger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db, logger),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Performance(service performance.PerformanceReporter, logger log.Logger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/performance/summary",
			Method:  http.MethodGet,
			Handler: GetPerformanceSummary(service, logger),
		},
		{
			Path:    "/v1/performance/time-series",
			Method:  http.MethodGet,
			Handler: GetPerformanceTimeSeries(service, logger),
		},
		{
			Path:    "/v1/performance/compare",
			Method:  http.MethodGet,
			Handler: ComparePerformance(service, logger),
		},
	}
}

func Campaigns(service campaign.Campaigner, logger log.Logger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service, logger),
		},
		{
			Path:    "/v1/campaigns/:id/name",
			Method:  http.MethodPatch,
			Handler: RenameCampaign(service, logger),
		},
	}
}

// CronJobs registra uma rota estática de execução por tipo, já que o httprouter
// não aceita /v1/cron/:type/run ao lado de /v1/cron/status
func CronJobs(services CronJobServices, logger log.Logger) []router.Route {
	routes := []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services, logger),
		},
	}

	for _, cronType := range services.types() {
		routes = append(routes, router.Route{
			Path:    "/v1/cron/" + cronType + "/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, cronType, logger),
		})
	}

	return routes
}

// NotFound responde rotas inexistentes no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}

// MethodNotAllowed responde métodos não suportados pela rota
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
	})
}
