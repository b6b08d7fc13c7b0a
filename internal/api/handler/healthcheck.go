package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a disponibilidade do banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logger.WithContext(r.Context()).WithError(err).Warn("Healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, logger, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
