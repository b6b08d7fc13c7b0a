package performance

import (
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

// CalculateMetrics deriva as taxas a partir dos totais. Denominador zero resulta em 0.
func CalculateMetrics(sums domain.AggregateSums) domain.DerivedMetrics {
	clicks := float64(sums.Clicks)

	return domain.DerivedMetrics{
		CostPerClick:           utils.RoundWithTwoDecimalPlace(utils.SafeDivide(sums.Cost, clicks)),
		CostPerConversion:      utils.RoundWithTwoDecimalPlace(utils.SafeDivide(sums.Cost, sums.Conversions)),
		CostPerMilleImpression: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(sums.Cost, sums.Impressions) * 1000),
		ConversionRate:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(sums.Conversions, clicks) * 100),
		ClickThroughRate:       utils.RoundWithTwoDecimalPlace(utils.SafeDivide(clicks, sums.Impressions) * 100),
	}
}

// NewPeriodSummary monta o resumo do período a partir das somas brutas
func NewPeriodSummary(startDate, endDate string, sums domain.AggregateSums) *domain.PeriodSummary {
	metrics := CalculateMetrics(sums)

	return &domain.PeriodSummary{
		StartDate:              startDate,
		EndDate:                endDate,
		TotalCost:              sums.Cost,
		TotalClicks:            sums.Clicks,
		TotalConversions:       sums.Conversions,
		TotalImpressions:       sums.Impressions,
		CostPerClick:           metrics.CostPerClick,
		CostPerConversion:      metrics.CostPerConversion,
		CostPerMilleImpression: metrics.CostPerMilleImpression,
		ConversionRate:         metrics.ConversionRate,
		ClickThroughRate:       metrics.ClickThroughRate,
	}
}

// NewTimeBucketSummary monta o resumo de um bucket (sem CPM)
func NewTimeBucketSummary(bucket domain.BucketSums) *domain.TimeBucketSummary {
	metrics := CalculateMetrics(bucket.AggregateSums)

	return &domain.TimeBucketSummary{
		Period:            bucket.Period,
		TotalCost:         bucket.Cost,
		TotalClicks:       bucket.Clicks,
		TotalConversions:  bucket.Conversions,
		TotalImpressions:  bucket.Impressions,
		CostPerClick:      metrics.CostPerClick,
		CostPerConversion: metrics.CostPerConversion,
		ConversionRate:    metrics.ConversionRate,
		ClickThroughRate:  metrics.ClickThroughRate,
	}
}
