package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/internal/metrics"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBuildAggregateSumsQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        domain.StatsQuery
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:  "sem filtros",
			query: domain.StatsQuery{},
			expectedSQL: "SELECT COALESCE(SUM(s.cost), 0) AS total_cost, COALESCE(SUM(s.clicks), 0) AS total_clicks, " +
				"COALESCE(SUM(s.conversions), 0) AS total_conversions, COALESCE(SUM(s.impressions), 0) AS total_impressions " +
				"FROM ad_group_stats s",
			expectedArgs: nil,
		},
		{
			name: "intervalo e ad groups",
			query: domain.StatsQuery{
				StartDate:  datePtr(2024, 1, 1),
				EndDate:    datePtr(2024, 1, 31),
				AdGroupIDs: []int64{10, 20},
			},
			expectedSQL: "SELECT COALESCE(SUM(s.cost), 0) AS total_cost, COALESCE(SUM(s.clicks), 0) AS total_clicks, " +
				"COALESCE(SUM(s.conversions), 0) AS total_conversions, COALESCE(SUM(s.impressions), 0) AS total_impressions " +
				"FROM ad_group_stats s WHERE s.date >= $1 AND s.date <= $2 AND s.ad_group_id IN ($3,$4)",
			expectedArgs: []interface{}{"2024-01-01", "2024-01-31", int64(10), int64(20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlQuery, args, err := buildAggregateSumsQuery(tt.query).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sqlQuery)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestBuildBucketedQuery(t *testing.T) {
	builder, err := buildBucketedQuery(domain.StatsQuery{
		Granularity: domain.GranularityWeek,
		StartDate:   datePtr(2024, 3, 1),
	})
	require.NoError(t, err)

	sqlQuery, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "SELECT date_trunc('week', s.date)::date AS period, COALESCE(SUM(s.cost), 0) AS total_cost")
	assert.Contains(t, sqlQuery, "WHERE s.date >= $1 GROUP BY period ORDER BY period DESC")
	assert.Equal(t, []interface{}{"2024-03-01"}, args)

	_, err = buildBucketedQuery(domain.StatsQuery{Granularity: "hour'; DROP TABLE campaign; --"})
	assert.Error(t, err)
}

func TestStatsRepository_AggregateSums(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("test")
	repo := NewStatsRepository(db, m)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ad_group_stats s WHERE s.date >= $1 AND s.date <= $2")).
		WithArgs("2024-01-05", "2024-01-10").
		WillReturnRows(sqlmock.NewRows([]string{"total_cost", "total_clicks", "total_conversions", "total_impressions"}).
			AddRow(150.5, int64(30), 4.0, 1000.0))

	sums, err := repo.AggregateSums(context.Background(), domain.StatsQuery{
		StartDate: datePtr(2024, 1, 5),
		EndDate:   datePtr(2024, 1, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, &domain.AggregateSums{Cost: 150.5, Clicks: 30, Conversions: 4, Impressions: 1000}, sums)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(operationAggregateSums, "ok")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_AggregateSumsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("test")
	repo := NewStatsRepository(db, m)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ad_group_stats s")).
		WillReturnError(&pq.Error{Code: "42P01", Message: "relation does not exist"})

	sums, err := repo.AggregateSums(context.Background(), domain.StatsQuery{})
	assert.Nil(t, sums)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42P01")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(operationAggregateSums, "error")))
}

func TestStatsRepository_AggregateSumsBucketed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db, nil)

	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("date_trunc('day', s.date)::date AS period")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"period", "total_cost", "total_clicks", "total_conversions", "total_impressions"}).
			AddRow(jan2, 20.0, int64(0), 0.0, 500.0).
			AddRow(jan1, 10.0, int64(5), 1.0, 100.0))

	buckets, err := repo.AggregateSumsBucketed(context.Background(), domain.StatsQuery{
		Granularity: domain.GranularityDay,
		AdGroupIDs:  []int64{7},
	})
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, jan2, buckets[0].Period)
	assert.Equal(t, int64(0), buckets[0].Clicks)
	assert.Equal(t, jan1, buckets[1].Period)
	assert.Equal(t, 10.0, buckets[1].Cost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_AggregateSumsBucketedInvalidGranularity(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepository(db, nil)

	_, err = repo.AggregateSumsBucketed(context.Background(), domain.StatsQuery{Granularity: "year"})
	assert.Error(t, err)
}
