package performance

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
)

const operationResolveBeforePeriod = "resolve_before_period"

// ResolveBeforePeriod calcula o período anterior usado na comparação.
//
// preceding: janela imediatamente anterior com o mesmo número de dias.
// previous_month: mesmo intervalo um mês antes; o dia é limitado ao último dia do mês de destino.
func ResolveBeforePeriod(startDate, endDate time.Time, mode domain.CompareMode) (time.Time, time.Time, error) {
	switch mode {
	case domain.CompareModePreceding:
		spanDays := daysBetween(startDate, endDate) + 1
		return startDate.AddDate(0, 0, -spanDays), startDate.AddDate(0, 0, -1), nil
	case domain.CompareModePreviousMonth:
		return shiftMonthClamped(startDate, -1), shiftMonthClamped(endDate, -1), nil
	default:
		return time.Time{}, time.Time{}, NewValidationError(
			operationResolveBeforePeriod,
			apiErrors.ErrInvalidRequest,
			ErrInvalidCompareMode,
			fmt.Sprintf("compare_mode %q não suportado, use preceding ou previous_month", mode),
		)
	}
}

func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// shiftMonthClamped desloca a data em n meses sem deixar o time.Date normalizar
// dias inexistentes (31/03 -> 29/02 em vez de 02/03)
func shiftMonthClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
