package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
	}{
		{name: "sem banco configurado", db: nil, expectedStatus: http.StatusOK},
		{name: "banco disponível", db: pingerFunc(func(context.Context) error { return nil }), expectedStatus: http.StatusOK},
		{name: "banco indisponível", db: pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db, log.NewTestLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
