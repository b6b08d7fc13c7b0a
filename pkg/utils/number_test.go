package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "already rounded", input: 12.5, expected: 12.5},
		{name: "rounds half up", input: 1.005, expected: 1.01},
		{name: "rounds down", input: 3.14159, expected: 3.14},
		{name: "repeating fraction", input: 200.0 / 3.0, expected: 66.67},
		{name: "negative", input: -2.345, expected: -2.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(10, 4))
	assert.Equal(t, 0.0, SafeDivide(0, 0))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2023-12-30", FormatDate(time.Date(2023, 12, 30, 15, 4, 0, 0, time.UTC)))
}
