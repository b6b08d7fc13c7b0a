package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

const (
	campaignsCSV = `campaign_id,campaign_name,campaign_type
1,Nike Air,search
2,Nike Run,display
`
	adGroupsCSV = `ad_group_name,ad_group_id,campaign_id
Air Max,10,1
Pegasus,20,2
`
	statsCSV = `date,ad_group_id,device,impressions,clicks,conversions,cost,extra
2024-01-05 00:00:00,10,mobile,100.0,10,2.5,12.3,x
2024-01-06,20,desktop,50,4.0,1,8,y
`
)

func TestUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schemaStatements {
		mock.ExpectExec("CREATE (TABLE|INDEX) IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Up(context.Background(), db, log.NewTestLogger()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpStopsOnFirstError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS campaign").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ad_group").WillReturnError(errors.New("permission denied"))

	err = Up(context.Background(), db, log.NewTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ad_group")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO campaign .+ ON CONFLICT \(campaign_id\) DO NOTHING`).
		WithArgs(int64(1), "Nike Air", "search", int64(2), "Nike Run", "display").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO ad_group .+ ON CONFLICT \(ad_group_id\) DO NOTHING`).
		WithArgs(int64(10), "Air Max", int64(1), int64(20), "Pegasus", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO ad_group_stats`).
		WithArgs(
			"2024-01-05", int64(10), "mobile", 100.0, int64(10), 2.5, 12.3,
			"2024-01-06", int64(20), "desktop", 50.0, int64(4), 1.0, 8.0,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	loader := NewLoader(&postgres.Connection{DB: db}, log.NewTestLogger(), 0)
	result, err := loader.Load(context.Background(), Sources{
		Campaigns: strings.NewReader(campaignsCSV),
		AdGroups:  strings.NewReader(adGroupsCSV),
		Stats:     strings.NewReader(statsCSV),
	})

	require.NoError(t, err)
	assert.Equal(t, &LoadResult{Campaigns: 2, AdGroups: 2, Stats: 2}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadInBatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO campaign`).
		WithArgs(int64(1), "Nike Air", "search").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO campaign`).
		WithArgs(int64(2), "Nike Run", "display").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	loader := NewLoader(&postgres.Connection{DB: db}, log.NewTestLogger(), 1)
	result, err := loader.Load(context.Background(), Sources{Campaigns: strings.NewReader(campaignsCSV)})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Campaigns)
	assert.Zero(t, result.Stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO campaign`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO ad_group`).WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	loader := NewLoader(&postgres.Connection{DB: db}, log.NewTestLogger(), 0)
	_, err = loader.Load(context.Background(), Sources{
		Campaigns: strings.NewReader(campaignsCSV),
		AdGroups:  strings.NewReader(adGroupsCSV),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreign key violation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		sources Sources
		wantErr string
	}{
		{
			name:    "missing column",
			sources: Sources{Campaigns: strings.NewReader("campaign_id,campaign_name\n1,Nike\n")},
			wantErr: `coluna "campaign_type" ausente`,
		},
		{
			name:    "invalid id",
			sources: Sources{AdGroups: strings.NewReader("ad_group_id,ad_group_name,campaign_id\nabc,Air,1\n")},
			wantErr: "linha 2: ad_group_id",
		},
		{
			name:    "fractional clicks",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,1,1.5,0,0\n")},
			wantErr: "clicks",
		},
		{
			name:    "invalid date",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n01/05/2024,1,mobile,1,1,0,0\n")},
			wantErr: "data inválida",
		},
		{
			name:    "negative clicks",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,1,-7,0,0\n")},
			wantErr: `clicks: valor negativo "-7"`,
		},
		{
			name:    "NaN impressions",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,NaN,1,0,0\n")},
			wantErr: `impressions: número inválido "NaN"`,
		},
		{
			name:    "Inf cost",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,1,1,0,Inf\n")},
			wantErr: `cost: número inválido "Inf"`,
		},
		{
			name:    "negative infinity conversions",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,1,1,-Inf,0\n")},
			wantErr: `conversions: número inválido "-Inf"`,
		},
		{
			name:    "negative cost",
			sources: Sources{Stats: strings.NewReader("date,ad_group_id,device,impressions,clicks,conversions,cost\n2024-01-01,1,mobile,1,1,0,-3\n")},
			wantErr: "cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			loader := NewLoader(&postgres.Connection{DB: db}, log.NewTestLogger(), 0)
			_, err = loader.Load(context.Background(), tt.sources)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParseStatsRowRejectsNonFiniteAndNegativeValues(t *testing.T) {
	row := map[string]string{
		"date": "2024-01-05", "ad_group_id": "1", "device": "mobile",
		"impressions": "NaN", "clicks": "-7", "conversions": "1", "cost": "2",
	}
	get := func(column string) string { return row[column] }

	_, err := parseStatsRow(get)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "impressions")

	row["impressions"] = "10"
	_, err = parseStatsRow(get)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clicks")

	row["clicks"] = "7"
	parsed, err := parseStatsRow(get)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"2024-01-05", int64(1), "mobile", 10.0, int64(7), 1.0, 2.0}, parsed)
}

func TestParseCount(t *testing.T) {
	n, err := parseCount("0")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = parseCount("-1")
	assert.Error(t, err)

	_, err = parseCount("-3.0")
	assert.Error(t, err)
}

func TestParseWhole(t *testing.T) {
	n, err := parseWhole("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	n, err = parseWhole("12.0")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = parseWhole("")
	assert.Error(t, err)
}
