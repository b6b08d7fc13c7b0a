package performance

import (
	"context"

	"github.com/vfg2006/campaign-performance-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// PerformanceReporter expõe os relatórios de performance para a camada HTTP e o scheduler
type PerformanceReporter interface {
	// GetPerformanceSummary resume o período [start_date, end_date]
	GetPerformanceSummary(ctx context.Context, filters *domain.PerformanceFilters) (*domain.PeriodSummary, error)

	// GetTimeSeries agrupa as estatísticas por dia, semana ou mês, do mais recente ao mais antigo
	GetTimeSeries(ctx context.Context, granularity domain.Granularity, filters *domain.PerformanceFilters) ([]*domain.TimeBucketSummary, error)

	// ComparePerformance compara o período com o período anterior derivado do compare mode
	ComparePerformance(ctx context.Context, filters *domain.PerformanceFilters, mode domain.CompareMode) (*domain.PerformanceComparison, error)
}
