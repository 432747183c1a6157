package kpi

import (
	"net/http"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByMonth(c *gin.Context) {
	anoMes := c.Query("ano_mes")
	if anoMes == "" {
		httpErr := apperror.ToHTTP(apperror.RequiredField("ano_mes"))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.GetByMonth(c.Request.Context(), anoMes)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ManualEdit(c *gin.Context) {
	var req ManualEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.ManualEdit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
