package domain

import "time"

// CompareMode define como o período anterior é derivado do período atual
type CompareMode string

const (
	// CompareModePreceding usa a janela imediatamente anterior com o mesmo número de dias
	CompareModePreceding CompareMode = "preceding"
	// CompareModePreviousMonth desloca o mesmo intervalo de dias um mês para trás
	CompareModePreviousMonth CompareMode = "previous_month"
)

// IsValid indica se o modo de comparação é um dos aceitos
func (m CompareMode) IsValid() bool {
	return m == CompareModePreceding || m == CompareModePreviousMonth
}

// PerformanceFilters são os filtros recebidos pela camada de performance
type PerformanceFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	AdGroupIDs []int64
}

// DerivedMetrics são as taxas calculadas a partir dos totais
type DerivedMetrics struct {
	CostPerClick           float64
	CostPerConversion      float64
	CostPerMilleImpression float64
	ConversionRate         float64
	ClickThroughRate       float64
}

// PeriodSummary é o resumo de performance de um intervalo de datas
type PeriodSummary struct {
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	TotalCost              float64 `json:"total_cost"`
	TotalClicks            int64   `json:"total_clicks"`
	TotalConversions       float64 `json:"total_conversions"`
	TotalImpressions       float64 `json:"total_impressions"`
	CostPerClick           float64 `json:"cost_per_click"`
	CostPerConversion      float64 `json:"cost_per_conversion"`
	CostPerMilleImpression float64 `json:"cost_per_mille_impression"`
	ConversionRate         float64 `json:"conversion_rate"`
	ClickThroughRate       float64 `json:"click_through_rate"`
}

// MetricFields retorna os campos numéricos do resumo indexados pelo nome JSON,
// sem os campos de data.
func (s *PeriodSummary) MetricFields() map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}

	return map[string]float64{
		"total_cost":                s.TotalCost,
		"total_clicks":              float64(s.TotalClicks),
		"total_conversions":         s.TotalConversions,
		"total_impressions":         s.TotalImpressions,
		"cost_per_click":            s.CostPerClick,
		"cost_per_conversion":       s.CostPerConversion,
		"cost_per_mille_impression": s.CostPerMilleImpression,
		"conversion_rate":           s.ConversionRate,
		"click_through_rate":        s.ClickThroughRate,
	}
}

// TimeBucketSummary é o resumo de um bucket (dia, semana ou mês) da série temporal
type TimeBucketSummary struct {
	Period            time.Time `json:"period"`
	TotalCost         float64   `json:"total_cost"`
	TotalClicks       int64     `json:"total_clicks"`
	TotalConversions  float64   `json:"total_conversions"`
	TotalImpressions  float64   `json:"total_impressions"`
	CostPerClick      float64   `json:"cost_per_click"`
	CostPerConversion float64   `json:"cost_per_conversion"`
	ConversionRate    float64   `json:"conversion_rate"`
	ClickThroughRate  float64   `json:"click_through_rate"`
}

// FieldComparison compara um campo entre o período atual e o anterior.
// PercentChange é nulo quando o valor anterior é zero.
type FieldComparison struct {
	Current       float64  `json:"current"`
	Before        float64  `json:"before"`
	PercentChange *float64 `json:"percent_change"`
}

// ComparisonReport mapeia o nome do campo para sua comparação
type ComparisonReport map[string]FieldComparison

// PerformanceComparison é a resposta completa de comparação de períodos
type PerformanceComparison struct {
	CurrentPeriod *PeriodSummary   `json:"current_period"`
	BeforePeriod  *PeriodSummary   `json:"before_period"`
	Comparison    ComparisonReport `json:"comparison"`
}
