package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/internal/metrics"
)

//go:generate mockgen -source=ad_group_stats.go -destination=mocks/ad_group_stats.go -package=mocks

const (
	adGroupStatsTable = "ad_group_stats s"

	operationAggregateSums         = "aggregate_sums"
	operationAggregateSumsBucketed = "aggregate_sums_bucketed"
)

var sumColumns = []string{
	"COALESCE(SUM(s.cost), 0) AS total_cost",
	"COALESCE(SUM(s.clicks), 0) AS total_clicks",
	"COALESCE(SUM(s.conversions), 0) AS total_conversions",
	"COALESCE(SUM(s.impressions), 0) AS total_impressions",
}

type StatsRepository interface {
	// AggregateSums soma custo, cliques, conversões e impressões dentro dos filtros
	AggregateSums(ctx context.Context, query domain.StatsQuery) (*domain.AggregateSums, error)
	// AggregateSumsBucketed soma por bucket (date_trunc) ordenando do mais recente ao mais antigo
	AggregateSumsBucketed(ctx context.Context, query domain.StatsQuery) ([]*domain.BucketSums, error)
}

type statsRepository struct {
	conn    postgres.Queryer
	metrics *metrics.Metrics
}

func NewStatsRepository(conn postgres.Queryer, m *metrics.Metrics) StatsRepository {
	return &statsRepository{
		conn:    conn,
		metrics: m,
	}
}

func (r *statsRepository) AggregateSums(ctx context.Context, query domain.StatsQuery) (sums *domain.AggregateSums, err error) {
	defer func(startedAt time.Time) {
		r.metrics.ObserveQuery(operationAggregateSums, startedAt, err)
	}(time.Now())

	sqlQuery, args, err := buildAggregateSumsQuery(query).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sums = &domain.AggregateSums{}
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&sums.Cost,
		&sums.Clicks,
		&sums.Conversions,
		&sums.Impressions,
	)
	if err != nil {
		return nil, wrapQueryError("agregar estatísticas", err)
	}

	return sums, nil
}

func (r *statsRepository) AggregateSumsBucketed(ctx context.Context, query domain.StatsQuery) (buckets []*domain.BucketSums, err error) {
	defer func(startedAt time.Time) {
		r.metrics.ObserveQuery(operationAggregateSumsBucketed, startedAt, err)
	}(time.Now())

	builder, err := buildBucketedQuery(query)
	if err != nil {
		return nil, err
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapQueryError("executar a query de série temporal", err)
	}
	defer rows.Close()

	buckets = make([]*domain.BucketSums, 0)
	for rows.Next() {
		bucket := &domain.BucketSums{}
		if err = rows.Scan(
			&bucket.Period,
			&bucket.Cost,
			&bucket.Clicks,
			&bucket.Conversions,
			&bucket.Impressions,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}

func buildAggregateSumsQuery(query domain.StatsQuery) squirrel.SelectBuilder {
	builder := squirrel.
		Select(sumColumns...).
		From(adGroupStatsTable).
		PlaceholderFormat(squirrel.Dollar)

	return applyStatsFilters(builder, query)
}

// buildBucketedQuery monta a consulta agrupada. A granularidade é interpolada no SQL,
// por isso só valores do enum são aceitos.
func buildBucketedQuery(query domain.StatsQuery) (squirrel.SelectBuilder, error) {
	if !query.Granularity.IsValid() {
		return squirrel.SelectBuilder{}, fmt.Errorf("granularidade inválida: %q", query.Granularity)
	}

	periodColumn := fmt.Sprintf("date_trunc('%s', s.date)::date AS period", query.Granularity)

	builder := squirrel.
		Select(append([]string{periodColumn}, sumColumns...)...).
		From(adGroupStatsTable).
		GroupBy("period").
		OrderBy("period DESC").
		PlaceholderFormat(squirrel.Dollar)

	return applyStatsFilters(builder, query), nil
}

func applyStatsFilters(builder squirrel.SelectBuilder, query domain.StatsQuery) squirrel.SelectBuilder {
	if query.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.date": query.StartDate.Format(time.DateOnly)})
	}

	if query.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.date": query.EndDate.Format(time.DateOnly)})
	}

	if len(query.AdGroupIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"s.ad_group_id": query.AdGroupIDs})
	}

	return builder
}
