package domain

// Campaign representa uma campanha de anúncios
type Campaign struct {
	ID   int64  `json:"campaign_id"`
	Name string `json:"campaign_name"`
	Type string `json:"campaign_type"`
}

// AdGroup representa um grupo de anúncios de uma campanha
type AdGroup struct {
	ID         int64  `json:"ad_group_id"`
	Name       string `json:"ad_group_name"`
	CampaignID int64  `json:"campaign_id"`
}

// AdGroupAverage contém as médias diárias de custo e conversões de um ad group
type AdGroupAverage struct {
	AdGroupID          int64   `json:"ad_group_id"`
	AdGroupName        string  `json:"ad_group_name"`
	AverageCost        float64 `json:"average_cost"`
	AverageConversions float64 `json:"average_conversions"`
}

// CampaignAdGroups agrupa uma campanha com as médias de seus ad groups, como lidos do banco
type CampaignAdGroups struct {
	Campaign
	AdGroups []AdGroupAverage
}

// CampaignOverview é a visão consolidada de uma campanha
type CampaignOverview struct {
	CampaignID               int64            `json:"campaign_id"`
	CampaignName             string           `json:"campaign_name"`
	CampaignType             string           `json:"campaign_type"`
	NumberOfAdGroups         int              `json:"number_of_ad_groups"`
	AdGroups                 []AdGroupAverage `json:"ad_groups"`
	AverageMonthlyCost       float64          `json:"average_monthly_cost"`
	AverageCostPerConversion float64          `json:"average_cost_per_conversion"`
}

// RenameCampaignRequest é o corpo da requisição de renomear campanha
type RenameCampaignRequest struct {
	Name string `json:"name"`
}
