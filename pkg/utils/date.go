package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma string YYYY-MM-DD em data. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use o formato YYYY-MM-DD", dateStr)
	}

	return &date, nil
}

// FormatDate formata a data no padrão ISO YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

// TruncateToDay normaliza a data para meia-noite no mesmo fuso
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
