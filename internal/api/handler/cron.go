package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyReport = "daily-report"
)

// CronJob é o contrato dos agendadores que podem ser disparados manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyReportService CronJob
}

func (s CronJobServices) types() []string {
	return []string{CronJobTypeDailyReport}
}

func (s CronJobServices) byType(cronType string) CronJob {
	switch cronType {
	case CronJobTypeDailyReport:
		return s.DailyReportService
	}
	return nil
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		job := services.byType(cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de cron não disponível", nil)
			return
		}

		logger.WithContext(r.Context()).WithField("type", cronType).Info("Execução manual de cron solicitada")

		// a execução continua depois que a resposta é enviada
		job.TriggerManualSync(context.WithoutCancel(r.Context()))

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		for _, cronType := range services.types() {
			if job := services.byType(cronType); job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
