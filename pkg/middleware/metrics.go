package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-performance-api/internal/metrics"
)

// Metrics registra contagem e latência da rota. route é o padrão registrado
// no router (ex.: /v1/campaigns/:id/name) para manter a cardinalidade baixa.
func Metrics(m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(sr, r)

			m.ObserveRequest(r.Method, route, sr.statusCode, time.Since(startTime))
		})
	}
}
