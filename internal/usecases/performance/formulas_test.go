package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
)

func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name     string
		sums     domain.AggregateSums
		expected domain.DerivedMetrics
	}{
		{
			name: "todos os denominadores preenchidos",
			sums: domain.AggregateSums{Cost: 100, Clicks: 50, Conversions: 5, Impressions: 2000},
			expected: domain.DerivedMetrics{
				CostPerClick:           2,
				CostPerConversion:      20,
				CostPerMilleImpression: 50,
				ConversionRate:         10,
				ClickThroughRate:       2.5,
			},
		},
		{
			name:     "sem linhas",
			sums:     domain.AggregateSums{},
			expected: domain.DerivedMetrics{},
		},
		{
			name: "zero cliques",
			sums: domain.AggregateSums{Cost: 10, Clicks: 0, Conversions: 0, Impressions: 1000},
			expected: domain.DerivedMetrics{
				CostPerClick:           0,
				CostPerConversion:      0,
				CostPerMilleImpression: 10,
				ConversionRate:         0,
				ClickThroughRate:       0,
			},
		},
		{
			name: "zero impressões com cliques",
			sums: domain.AggregateSums{Cost: 30, Clicks: 3, Conversions: 2, Impressions: 0},
			expected: domain.DerivedMetrics{
				CostPerClick:           10,
				CostPerConversion:      15,
				CostPerMilleImpression: 0,
				ConversionRate:         66.67,
				ClickThroughRate:       0,
			},
		},
		{
			name: "arredondamento para duas casas",
			sums: domain.AggregateSums{Cost: 10, Clicks: 3, Conversions: 7, Impressions: 9},
			expected: domain.DerivedMetrics{
				CostPerClick:           3.33,
				CostPerConversion:      1.43,
				CostPerMilleImpression: 1111.11,
				ConversionRate:         233.33,
				ClickThroughRate:       33.33,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateMetrics(tt.sums))
		})
	}
}

func TestNewTimeBucketSummaryZeroClicks(t *testing.T) {
	period := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bucket := NewTimeBucketSummary(domain.BucketSums{
		Period:        period,
		AggregateSums: domain.AggregateSums{Cost: 25, Clicks: 0, Conversions: 0, Impressions: 500},
	})

	assert.Equal(t, period, bucket.Period)
	assert.Equal(t, 25.0, bucket.TotalCost)
	assert.Equal(t, 0.0, bucket.CostPerClick)
	assert.Equal(t, 0.0, bucket.ConversionRate)
	assert.Equal(t, 0.0, bucket.ClickThroughRate)
}
