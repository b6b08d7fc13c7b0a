package campaign

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignNameRequired = errors.New("campaign name is required")
	ErrCampaignNameTooLong  = errors.New("campaign name is too long")
	ErrInvalidCampaignID    = errors.New("invalid campaign id")

	ErrCampaignNotFound = errors.New("campaign not found")

	// Erros de banco de dados
	ErrFetchCampaigns = errors.New("error fetching campaigns from database")
	ErrUpdateCampaign = errors.New("error updating campaign")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID int64  // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, campaignID int64, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
