package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/campaign-performance-api/internal/api/handler"
	"github.com/vfg2006/campaign-performance-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-performance-api/internal/config"
	"github.com/vfg2006/campaign-performance-api/internal/metrics"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
	"github.com/vfg2006/campaign-performance-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	logger     log.Logger
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	DB                 handler.Pinger
	PerformanceService performance.PerformanceReporter
	CampaignService    campaign.Campaigner
	CronServices       handler.CronJobServices
	Metrics            *metrics.Metrics
}

func New(cfg *config.Config, logger log.Logger, deps Dependencies) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, logger, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
		logger: logger,
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, logger log.Logger, deps Dependencies) http.Handler {
	configs := []router.ConfigRouter{
		router.WithFallback(handler.NotFound(), handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck(deps.DB, logger)...),
		router.WithRoutes(handler.Performance(deps.PerformanceService, logger)...),
		router.WithRoutes(handler.Campaigns(deps.CampaignService, logger)...),
		router.WithRoutes(handler.CronJobs(deps.CronServices, logger)...),
	}

	if deps.Metrics != nil {
		configs = append(configs,
			router.WithRoutes(handler.Metrics(deps.Metrics.Handler())...),
			router.WithInstrumentation(func(path string) func(http.Handler) http.Handler {
				return middleware.Metrics(deps.Metrics, path)
			}),
		)
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		s.logger.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("Erro durante a execução do servidor")
			serverErr <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		s.logger.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		s.logger.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	s.logger.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
