package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

const (
	campaignTable = "campaign c"
)

type CampaignRepository interface {
	// ListCampaignAdGroups lista as campanhas com as médias diárias de cada ad group
	ListCampaignAdGroups(ctx context.Context) ([]*domain.CampaignAdGroups, error)
	// UpdateName renomeia a campanha. Retorna false quando a campanha não existe.
	UpdateName(ctx context.Context, campaignID int64, name string) (bool, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaignAdGroups(ctx context.Context) ([]*domain.CampaignAdGroups, error) {
	query, args, err := squirrel.
		Select(
			"c.campaign_id",
			"c.campaign_name",
			"c.campaign_type",
			"ag.ad_group_id",
			"ag.ad_group_name",
			"COALESCE(AVG(s.cost), 0) AS average_cost",
			"COALESCE(AVG(s.conversions), 0) AS average_conversions",
		).
		From(campaignTable).
		LeftJoin("ad_group ag ON ag.campaign_id = c.campaign_id").
		LeftJoin("ad_group_stats s ON s.ad_group_id = ag.ad_group_id").
		GroupBy("c.campaign_id", "c.campaign_name", "c.campaign_type", "ag.ad_group_id", "ag.ad_group_name").
		OrderBy("c.campaign_id ASC", "ag.ad_group_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError("listar campanhas", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.CampaignAdGroups, 0)
	byID := make(map[int64]*domain.CampaignAdGroups)

	for rows.Next() {
		var (
			campaign    domain.Campaign
			adGroupID   sql.NullInt64
			adGroupName sql.NullString
			avgCost     float64
			avgConv     float64
		)

		if err := rows.Scan(
			&campaign.ID,
			&campaign.Name,
			&campaign.Type,
			&adGroupID,
			&adGroupName,
			&avgCost,
			&avgConv,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		entry, exists := byID[campaign.ID]
		if !exists {
			entry = &domain.CampaignAdGroups{
				Campaign: campaign,
				AdGroups: make([]domain.AdGroupAverage, 0),
			}
			byID[campaign.ID] = entry
			campaigns = append(campaigns, entry)
		}

		// LEFT JOIN: campanha sem ad groups
		if !adGroupID.Valid {
			continue
		}

		entry.AdGroups = append(entry.AdGroups, domain.AdGroupAverage{
			AdGroupID:          adGroupID.Int64,
			AdGroupName:        adGroupName.String,
			AverageCost:        avgCost,
			AverageConversions: avgConv,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) UpdateName(ctx context.Context, campaignID int64, name string) (bool, error) {
	query, args, err := squirrel.
		Update("campaign").
		Set("campaign_name", name).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapQueryError("renomear campanha", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
