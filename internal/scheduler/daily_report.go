// Package scheduler contém os serviços de agendamento da API
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/campaign-performance-api/internal/config"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/internal/metrics"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/performance"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

// ErrAlreadyRunning indica que outra execução do relatório diário ainda não terminou
var ErrAlreadyRunning = errors.New("relatório diário já está em execução")

type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
	CompareMode  domain.CompareMode
}

// DailyReportService compara o dia anterior com o período anterior e registra a variação no log
type DailyReportService struct {
	scheduler *gocron.Scheduler
	reporter  performance.PerformanceReporter
	logger    log.Logger
	metrics   *metrics.Metrics
	config    DailyReportConfig
	now       func() time.Time

	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErr         error
}

func NewDailyReportService(
	reporter performance.PerformanceReporter,
	logger log.Logger,
	m *metrics.Metrics,
	cfg *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: cfg.DailyReport.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.DailyReport.Enabled,      // Default: desabilitado
		CompareMode:  domain.CompareMode(cfg.DailyReport.CompareMode),
	}

	if !reportConfig.CompareMode.IsValid() {
		logger.WithField("compare_mode", reportConfig.CompareMode).
			Warn("Compare mode do relatório diário inválido, usando preceding")
		reportConfig.CompareMode = domain.CompareModePreceding
	}

	logger.WithFields(log.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"compare_mode":  reportConfig.CompareMode,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		logger:    logger,
		metrics:   m,
		config:    reportConfig,
		now:       time.Now,
	}
}

func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Cron do relatório diário desabilitada por configuração")
		return nil
	}

	s.logger.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunReport(ctx); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			s.logger.WithError(err).Error("Erro na execução do relatório diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Parando cron do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport executa o relatório. Se já houver uma execução em andamento, retorna
// ErrAlreadyRunning sem consultar o repositório nem registrar métricas.
func (s *DailyReportService) RunReport(ctx context.Context) (*domain.PerformanceComparison, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		s.logger.WithContext(ctx).Warn("Relatório diário já está em execução")
		return nil, ErrAlreadyRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.runMutex.Unlock()

	comparison, err := s.compareYesterday(ctx)

	s.runMutex.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastErr = err
	s.runMutex.Unlock()

	s.metrics.ObserveReportRun(err)

	return comparison, err
}

func (s *DailyReportService) compareYesterday(ctx context.Context) (*domain.PerformanceComparison, error) {
	yesterday := utils.TruncateToDay(s.now()).AddDate(0, 0, -1)
	logger := s.logger.WithContext(ctx).WithFields(log.Fields{
		"date":         utils.FormatDate(yesterday),
		"compare_mode": s.config.CompareMode,
	})

	logger.Info("Iniciando relatório diário de performance")

	comparison, err := s.reporter.ComparePerformance(ctx, &domain.PerformanceFilters{
		StartDate: &yesterday,
		EndDate:   &yesterday,
	}, s.config.CompareMode)
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(comparison.Comparison))
	for field := range comparison.Comparison {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		c := comparison.Comparison[field]

		entry := logger.WithFields(log.Fields{
			"field":   field,
			"current": c.Current,
			"before":  c.Before,
		})
		if c.PercentChange != nil {
			entry = entry.WithField("percent_change", *c.PercentChange)
		}
		entry.Info("Variação do relatório diário")
	}

	logger.WithField("before_start_date", comparison.BeforePeriod.StartDate).
		Info("Relatório diário de performance concluído")

	return comparison, nil
}

// TriggerManualSync inicia manualmente o relatório diário
func (s *DailyReportService) TriggerManualSync(ctx context.Context) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		s.logger.Info("Relatório diário já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	s.logger.WithContext(ctx).Info("Iniciando execução manual do relatório diário")
	go func() {
		if _, err := s.RunReport(ctx); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			s.logger.WithContext(ctx).WithError(err).Error("Erro na execução manual do relatório diário")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	var lastError string
	if s.lastErr != nil {
		lastError = s.lastErr.Error()
	}

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"compare_mode":      s.config.CompareMode,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        lastError,
	}
}
