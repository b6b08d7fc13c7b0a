package main

import (
	"context"

	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/infrastructure/repository"
	"github.com/vfg2006/campaign-performance-api/internal/api"
	"github.com/vfg2006/campaign-performance-api/internal/api/handler"
	"github.com/vfg2006/campaign-performance-api/internal/config"
	"github.com/vfg2006/campaign-performance-api/internal/metrics"
	"github.com/vfg2006/campaign-performance-api/internal/scheduler"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

func main() {
	cfg, notes, err := config.NewConfig()

	// O logger depende da configuração; em caso de erro usamos os defaults
	logOpts := log.Options{Level: "info"}
	if cfg != nil {
		logOpts = cfg.Log.LoggerOptions()
	}
	logger, closer := log.New(logOpts)
	defer closer.Close()

	for _, note := range notes {
		logger.Info(note)
	}
	if err != nil {
		logger.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.New(cfg.Metrics.Namespace)

	pgConn := pgconn(ctx, cfg.Database, logger)
	defer pgConn.Close()

	statsRepo := repository.NewStatsRepository(pgConn, appMetrics)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	performanceService := performance.NewService(statsRepo, logger, cfg.Server.QueryTimeout)
	campaignService := campaign.NewService(campaignRepo, logger)

	dailyReportService := scheduler.NewDailyReportService(performanceService, logger, appMetrics, cfg)

	// Inicia o agendador em background
	if err := dailyReportService.Start(ctx); err != nil {
		logger.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	}

	server, err := api.New(cfg, logger, api.Dependencies{
		DB:                 pgConn,
		PerformanceService: performanceService,
		CampaignService:    campaignService,
		CronServices: handler.CronJobServices{
			DailyReportService: dailyReportService,
		},
		Metrics: appMetrics,
	})
	if err != nil {
		logger.WithError(err).Fatal("Erro ao criar o servidor")
	}

	if err := server.Run(ctx); err != nil {
		logger.WithError(err).Error("Servidor encerrado com erro")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database, logger log.Logger) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logger.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
