package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

func newTestApp(t *testing.T) (*CLIApp, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	app := NewCLIApp(log.NewTestLogger(), func(context.Context) (postgres.Conn, error) {
		return &postgres.Connection{DB: db}, nil
	})

	out := &bytes.Buffer{}
	app.rootCmd.SetOut(out)
	return app, mock, out
}

func TestUpCommand(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS campaign").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ad_group").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ad_group_stats").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	require.NoError(t, app.Execute(context.Background(), []string{"up"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCommand(t *testing.T) {
	app, mock, out := newTestApp(t)

	dir := t.TempDir()
	campaigns := filepath.Join(dir, "campaign.csv")
	require.NoError(t, os.WriteFile(campaigns, []byte("campaign_id,campaign_name,campaign_type\n1,Nike Air,search\n"), 0o600))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO campaign").
		WithArgs(int64(1), "Nike Air", "search").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectClose()

	require.NoError(t, app.Execute(context.Background(), []string{"load", "--campaigns", campaigns}))
	assert.Equal(t, "campanhas: 1, ad groups: 0, estatísticas: 0\n", out.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCommandRequiresAFile(t *testing.T) {
	app, mock, _ := newTestApp(t)

	err := app.Execute(context.Background(), []string{"load"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "informe ao menos um arquivo")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCommandMissingFile(t *testing.T) {
	app, mock, _ := newTestApp(t)

	err := app.Execute(context.Background(), []string{"load", "--stats", filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao abrir")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionFailure(t *testing.T) {
	app := NewCLIApp(log.NewTestLogger(), func(context.Context) (postgres.Conn, error) {
		return nil, errors.New("connection refused")
	})

	err := app.Execute(context.Background(), []string{"up"})
	assert.EqualError(t, err, "connection refused")
}
