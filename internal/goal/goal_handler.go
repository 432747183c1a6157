package goal

import (
	"net/http"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type WinnerResponse struct {
	ID         string `json:"id"`
	GoalID     string `json:"meta_id"`
	PrizeType  string `json:"tipo_premio"`
	SDRID      string `json:"sdr_id"`
	Autorizado bool   `json:"autorizado"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetWinners(c *gin.Context) {
	anoMes := c.Query("ano_mes")
	if anoMes == "" {
		httpErr := apperror.ToHTTP(apperror.RequiredField("ano_mes"))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	winners, err := h.repo.FindWinnersByMonth(c.Request.Context(), anoMes)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res := make([]WinnerResponse, len(winners))
	for i, w := range winners {
		res[i] = WinnerResponse{
			ID:         w.ID.String(),
			GoalID:     w.GoalID.String(),
			PrizeType:  w.PrizeType,
			SDRID:      w.SDRID.String(),
			Autorizado: w.Autorizado,
		}
	}

	response.Success(c, http.StatusOK, res, nil)
}
