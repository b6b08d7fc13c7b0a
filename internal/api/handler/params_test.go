package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdGroupIDs(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		expected  []int64
		expectErr bool
	}{
		{name: "sem filtro", query: "", expected: nil},
		{name: "repetido", query: "ad_group_ids=1&ad_group_ids=2", expected: []int64{1, 2}},
		{name: "separado por vírgula", query: "ad_group_ids=1,%202,,3", expected: []int64{1, 2, 3}},
		{name: "alias legado", query: "campaigns=7", expected: []int64{7}},
		{name: "duplicados entre parâmetros", query: "ad_group_ids=7&campaigns=7,8", expected: []int64{7, 8}},
		{name: "valor inválido", query: "ad_group_ids=1,x", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			ids, err := parseAdGroupIDs(values)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestParsePerformanceFilters(t *testing.T) {
	values, err := url.ParseQuery("start_date=2024-01-01&end_date=%202024-01-31%20")
	require.NoError(t, err)

	filters, err := parsePerformanceFilters(values)
	require.NoError(t, err)
	assert.Equal(t, datePtr(2024, 1, 1), filters.StartDate)
	assert.Equal(t, datePtr(2024, 1, 31), filters.EndDate)
	assert.Nil(t, filters.AdGroupIDs)

	values, err = url.ParseQuery("start_date=01/01/2024")
	require.NoError(t, err)

	_, err = parsePerformanceFilters(values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}
