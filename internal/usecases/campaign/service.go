package campaign

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/campaign-performance-api/infrastructure/repository"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
	"github.com/vfg2006/campaign-performance-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// MaxCampaignNameLength é o tamanho da coluna campaign_name
const MaxCampaignNameLength = 255

// Campaigner define as operações sobre campanhas expostas pela API
type Campaigner interface {
	// ListCampaigns lista as campanhas com médias por ad group
	ListCampaigns(ctx context.Context) ([]*domain.CampaignOverview, error)
	// RenameCampaign altera o nome da campanha
	RenameCampaign(ctx context.Context, campaignID int64, name string) error
}

// Service implementa Campaigner
type Service struct {
	campaignRepository repository.CampaignRepository
	logger             log.Logger
}

var _ Campaigner = (*Service)(nil)

func NewService(campaignRepo repository.CampaignRepository, logger log.Logger) *Service {
	return &Service{
		campaignRepository: campaignRepo,
		logger:             logger,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.CampaignOverview, error) {
	campaigns, err := s.campaignRepository.ListCampaignAdGroups(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Erro ao buscar campanhas no repositório")
		return nil, NewCampaignError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, 0, err.Error())
	}

	overviews := make([]*domain.CampaignOverview, 0, len(campaigns))
	for _, c := range campaigns {
		overviews = append(overviews, BuildOverview(c))
	}

	return overviews, nil
}

// BuildOverview consolida as médias dos ad groups de uma campanha.
// average_monthly_cost é a média dos custos médios; average_cost_per_conversion
// divide a soma dos custos médios pela soma das conversões médias.
func BuildOverview(c *domain.CampaignAdGroups) *domain.CampaignOverview {
	var totalCost, totalConversions float64

	adGroups := make([]domain.AdGroupAverage, 0, len(c.AdGroups))
	for _, ag := range c.AdGroups {
		totalCost += ag.AverageCost
		totalConversions += ag.AverageConversions

		adGroups = append(adGroups, domain.AdGroupAverage{
			AdGroupID:          ag.AdGroupID,
			AdGroupName:        ag.AdGroupName,
			AverageCost:        utils.RoundWithTwoDecimalPlace(ag.AverageCost),
			AverageConversions: utils.RoundWithTwoDecimalPlace(ag.AverageConversions),
		})
	}

	return &domain.CampaignOverview{
		CampaignID:               c.ID,
		CampaignName:             c.Name,
		CampaignType:             c.Type,
		NumberOfAdGroups:         len(adGroups),
		AdGroups:                 adGroups,
		AverageMonthlyCost:       utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totalCost, float64(len(adGroups)))),
		AverageCostPerConversion: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totalCost, totalConversions)),
	}
}

func (s *Service) RenameCampaign(ctx context.Context, campaignID int64, name string) error {
	logger := s.logger.WithContext(ctx).WithField("campaign_id", campaignID)

	if campaignID <= 0 {
		return NewCampaignError(ErrInvalidCampaignID, apiErrors.ErrInvalidRequest, campaignID, "")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return NewCampaignError(ErrCampaignNameRequired, apiErrors.ErrMissingRequiredData, campaignID, "")
	}

	if utf8.RuneCountInString(name) > MaxCampaignNameLength {
		return NewCampaignError(ErrCampaignNameTooLong, apiErrors.ErrInvalidFormat, campaignID,
			fmt.Sprintf("máximo de %d caracteres", MaxCampaignNameLength))
	}

	found, err := s.campaignRepository.UpdateName(ctx, campaignID, name)
	if err != nil {
		logger.WithError(err).Error("Erro ao renomear campanha")
		return NewCampaignError(ErrUpdateCampaign, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	if !found {
		return NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, campaignID, "")
	}

	logger.WithField("campaign_name", name).Info("Campanha renomeada")
	return nil
}
