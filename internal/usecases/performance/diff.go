package performance

import (
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

// Diff compara os campos numéricos do período atual com o anterior.
// Campos de data ficam de fora e campo ausente em before conta como 0.
func Diff(current, before *domain.PeriodSummary) domain.ComparisonReport {
	return diffFields(current.MetricFields(), before.MetricFields())
}

func diffFields(current, before map[string]float64) domain.ComparisonReport {
	report := make(domain.ComparisonReport, len(current))

	for field, currentValue := range current {
		beforeValue := before[field]

		report[field] = domain.FieldComparison{
			Current:       currentValue,
			Before:        beforeValue,
			PercentChange: PercentChange(currentValue, beforeValue),
		}
	}

	return report
}

// PercentChange retorna a variação percentual, ou nil quando não há base anterior
func PercentChange(current, before float64) *float64 {
	if before == 0 {
		return nil
	}

	change := utils.RoundWithTwoDecimalPlace((current - before) / before * 100)
	return &change
}
