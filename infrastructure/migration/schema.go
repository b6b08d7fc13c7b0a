// Package migration cria o schema de estatísticas e carrega as exportações CSV.
package migration

import (
	"context"
	"fmt"

	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

type schemaStatement struct {
	name string
	sql  string
}

var schemaStatements = []schemaStatement{
	{
		name: "campaign",
		sql: `CREATE TABLE IF NOT EXISTS campaign (
	campaign_id BIGINT PRIMARY KEY,
	campaign_name VARCHAR(255) NOT NULL,
	campaign_type VARCHAR(50) NOT NULL
)`,
	},
	{
		name: "ad_group",
		sql: `CREATE TABLE IF NOT EXISTS ad_group (
	ad_group_id BIGINT PRIMARY KEY,
	ad_group_name VARCHAR(255) NOT NULL,
	campaign_id BIGINT NOT NULL REFERENCES campaign(campaign_id) ON DELETE CASCADE
)`,
	},
	{
		name: "ad_group_stats",
		sql: `CREATE TABLE IF NOT EXISTS ad_group_stats (
	stats_id SERIAL PRIMARY KEY,
	date DATE NOT NULL,
	ad_group_id BIGINT NOT NULL REFERENCES ad_group(ad_group_id) ON DELETE CASCADE,
	device VARCHAR(50) NOT NULL,
	impressions DECIMAL(10, 2) NOT NULL,
	clicks INT NOT NULL,
	conversions DECIMAL(10, 2) NOT NULL,
	cost DECIMAL(10, 2) NOT NULL
)`,
	},
	{
		name: "idx_ad_group_stats_date",
		sql:  `CREATE INDEX IF NOT EXISTS idx_ad_group_stats_date ON ad_group_stats (date)`,
	},
	{
		name: "idx_ad_group_stats_ad_group_date",
		sql:  `CREATE INDEX IF NOT EXISTS idx_ad_group_stats_ad_group_date ON ad_group_stats (ad_group_id, date)`,
	},
	{
		name: "idx_ad_group_campaign",
		sql:  `CREATE INDEX IF NOT EXISTS idx_ad_group_campaign ON ad_group (campaign_id)`,
	},
}

// Up cria tabelas e índices. Pode ser executado várias vezes.
func Up(ctx context.Context, conn postgres.Queryer, logger log.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt.sql); err != nil {
			logger.WithError(err).WithField("statement", stmt.name).Error("Erro ao aplicar o schema")
			return fmt.Errorf("erro ao criar %s: %w", stmt.name, err)
		}
		logger.WithField("statement", stmt.name).Debug("Schema aplicado")
	}

	logger.Infof("Schema atualizado (%d comandos)", len(schemaStatements))
	return nil
}
