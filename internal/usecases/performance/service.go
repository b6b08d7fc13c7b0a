package performance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/campaign-performance-api/infrastructure/repository"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

const (
	operationSummary    = "get_performance_summary"
	operationTimeSeries = "get_time_series"
	operationCompare    = "compare_performance"
)

// Service implementa PerformanceReporter sobre o repositório de estatísticas
type Service struct {
	statsRepository repository.StatsRepository
	logger          log.Logger
	queryTimeout    time.Duration
}

var _ PerformanceReporter = (*Service)(nil)

// NewService cria uma nova instância do serviço de performance.
// queryTimeout <= 0 desabilita o limite por consulta.
func NewService(statsRepo repository.StatsRepository, logger log.Logger, queryTimeout time.Duration) *Service {
	return &Service{
		statsRepository: statsRepo,
		logger:          logger,
		queryTimeout:    queryTimeout,
	}
}

// GetPerformanceSummary resume o período informado
func (s *Service) GetPerformanceSummary(ctx context.Context, filters *domain.PerformanceFilters) (*domain.PeriodSummary, error) {
	if err := requireDates(operationSummary, filters); err != nil {
		return nil, err
	}

	return s.summarize(ctx, operationSummary, *filters.StartDate, *filters.EndDate, filters.AdGroupIDs)
}

// GetTimeSeries retorna os buckets ordenados do mais recente ao mais antigo
func (s *Service) GetTimeSeries(ctx context.Context, granularity domain.Granularity, filters *domain.PerformanceFilters) ([]*domain.TimeBucketSummary, error) {
	if !granularity.IsValid() {
		return nil, NewValidationError(
			operationTimeSeries,
			apiErrors.ErrInvalidRequest,
			ErrInvalidAggregateBy,
			fmt.Sprintf("aggregate_by %q não suportado, use day, week ou month", granularity),
		)
	}

	query := domain.StatsQuery{Granularity: granularity}
	if filters != nil {
		query.StartDate = filters.StartDate
		query.EndDate = filters.EndDate
		query.AdGroupIDs = filters.AdGroupIDs
	}

	ctx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	buckets, err := s.statsRepository.AggregateSumsBucketed(ctx, query)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"operation":    operationTimeSeries,
			"aggregate_by": granularity,
			"start_date":   formatOptionalDate(query.StartDate),
			"end_date":     formatOptionalDate(query.EndDate),
			"ad_group_ids": query.AdGroupIDs,
		}).Error("Erro ao agregar série temporal")
		return nil, NewDataAccessError(operationTimeSeries, apiErrors.ErrDatabaseOperation, err)
	}

	series := make([]*domain.TimeBucketSummary, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket == nil {
			continue
		}
		series = append(series, NewTimeBucketSummary(*bucket))
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Period.After(series[j].Period)
	})

	return series, nil
}

// ComparePerformance busca o período atual e o anterior em paralelo e monta o relatório de variação
func (s *Service) ComparePerformance(ctx context.Context, filters *domain.PerformanceFilters, mode domain.CompareMode) (*domain.PerformanceComparison, error) {
	if err := requireDates(operationCompare, filters); err != nil {
		return nil, err
	}

	beforeStart, beforeEnd, err := ResolveBeforePeriod(*filters.StartDate, *filters.EndDate, mode)
	if err != nil {
		return nil, err
	}

	var current, before *domain.PeriodSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.summarize(gctx, operationCompare, *filters.StartDate, *filters.EndDate, filters.AdGroupIDs)
		return err
	})
	g.Go(func() error {
		var err error
		before, err = s.summarize(gctx, operationCompare, beforeStart, beforeEnd, filters.AdGroupIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PerformanceComparison{
		CurrentPeriod: current,
		BeforePeriod:  before,
		Comparison:    Diff(current, before),
	}, nil
}

// summarize executa uma agregação e aplica as fórmulas. Intervalo invertido resulta em totais zerados.
func (s *Service) summarize(ctx context.Context, operation string, startDate, endDate time.Time, adGroupIDs []int64) (*domain.PeriodSummary, error) {
	queryCtx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	sums, err := s.statsRepository.AggregateSums(queryCtx, domain.StatsQuery{
		StartDate:  &startDate,
		EndDate:    &endDate,
		AdGroupIDs: adGroupIDs,
	})
	if err != nil {
		logEntry := s.logger.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"operation":    operation,
			"start_date":   utils.FormatDate(startDate),
			"end_date":     utils.FormatDate(endDate),
			"ad_group_ids": adGroupIDs,
		})
		// a consulta irmã do grupo já registrou a falha que causou o cancelamento
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			logEntry.Debug("Consulta do período cancelada")
		} else {
			logEntry.Error("Erro ao agregar estatísticas do período")
		}
		return nil, NewDataAccessError(operation, apiErrors.ErrDatabaseOperation, err)
	}

	if sums == nil {
		sums = &domain.AggregateSums{}
	}

	return NewPeriodSummary(utils.FormatDate(startDate), utils.FormatDate(endDate), *sums), nil
}

func (s *Service) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func requireDates(operation string, filters *domain.PerformanceFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return NewValidationError(operation, apiErrors.ErrMissingRequiredData, ErrMissingDates, "")
	}
	return nil
}

func formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return utils.FormatDate(*date)
}
