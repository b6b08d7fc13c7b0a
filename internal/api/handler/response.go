package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com o status informado
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeInvalidParams registra e responde parâmetros de consulta malformados
func writeInvalidParams(w http.ResponseWriter, r *http.Request, logger log.Logger, operation string, err error) {
	logger.WithContext(r.Context()).WithError(err).WithFields(log.Fields{
		"operation": operation,
		"query":     r.URL.RawQuery,
	}).Warn("Parâmetros inválidos")

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}

// writeServiceError converte os erros tipados dos casos de uso em respostas padronizadas
func writeServiceError(w http.ResponseWriter, r *http.Request, logger log.Logger, err error) {
	var perfErr *performance.PerformanceError
	if errors.As(err, &perfErr) {
		logEntry := logger.WithContext(r.Context()).WithError(err).WithField("operation", perfErr.Operation)
		if errors.Is(err, performance.ErrValidation) {
			logEntry.WithField("query", r.URL.RawQuery).Warn("Parâmetros inválidos")
			apiErrors.WriteError(w, perfErr.Code, validationMessage(perfErr), detailsOf(perfErr.Details))
			return
		}

		logEntry.Error("Erro ao calcular performance")
		apiErrors.WriteError(w, perfErr.Code, "Erro ao consultar estatísticas", nil)
		return
	}

	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		logEntry := logger.WithContext(r.Context()).WithError(err).WithField("campaign_id", campaignErr.CampaignID)
		if apiErrors.StatusFor(campaignErr.Code) >= http.StatusInternalServerError {
			logEntry.Error("Erro na operação de campanha")
			apiErrors.WriteError(w, campaignErr.Code, campaignErr.Err.Error(), nil)
			return
		}

		logEntry.Warn("Operação de campanha rejeitada")
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	logger.WithContext(r.Context()).WithError(err).Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

func validationMessage(perfErr *performance.PerformanceError) string {
	for _, known := range []error{performance.ErrMissingDates, performance.ErrInvalidCompareMode, performance.ErrInvalidAggregateBy} {
		if errors.Is(perfErr, known) {
			return known.Error()
		}
	}
	return perfErr.Error()
}

func detailsOf(details string) any {
	if details == "" {
		return nil
	}
	return details
}
