package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-performance-api/internal/domain"
	"github.com/vfg2006/campaign-performance-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-performance-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-performance-api/pkg/log"
)

// maxRenameBodyBytes limita o corpo do PATCH de nome
const maxRenameBodyBytes = 4 << 10

func ListCampaigns(service campaign.Campaigner, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, campaigns)
	})
}

func RenameCampaign(service campaign.Campaigner, logger log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaignID, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da campanha inválido", nil)
			return
		}

		var req domain.RenameCampaignRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRenameBodyBytes)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.RenameCampaign(r.Context(), campaignID, req.Name); err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]string{
			"message": "Nome da campanha atualizado com sucesso",
		})
	})
}
