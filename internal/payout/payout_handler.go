package payout

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

// Recalculate memakai response datar (kontrak UI admin lama), bukan envelope
// response.Success seperti endpoint lainnya.
func (h *Handler) Recalculate(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ano_mes is required"})
		return
	}
	if req.AnoMes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ano_mes is required"})
		return
	}

	summary, err := h.service.Recalculate(c.Request.Context(), req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(summary); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	if summary.Message != "" {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   summary.Message,
			"processed": summary.Processed,
		})
		return
	}

	c.JSON(http.StatusOK, summary)
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

func (h *Handler) GetById(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
