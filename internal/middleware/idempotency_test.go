package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func idempotencyRouter(rdb *redis.Client) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.POST("/payouts/recalculate", middleware.Idempotency(rdb), func(c *gin.Context) {
		reached = true
		_, hasCache := c.Get("idempotency_cache_key")
		_, hasLock := c.Get("idempotency_lock_key")
		c.JSON(http.StatusOK, gin.H{"cache_key_set": hasCache, "lock_key_set": hasLock})
	})
	return r, &reached
}

func postRecalculate(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payouts/recalculate", strings.NewReader(`{}`))
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r, reached := idempotencyRouter(rdb)

	w := postRecalculate(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CachedResponseShortCircuits(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/payouts/recalculate::req-1"
	mock.ExpectGet(cacheKey).SetVal(`{"processed":3}`)

	r, reached := idempotencyRouter(rdb)
	w := postRecalculate(r, "req-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), `"processed":3`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightRequestRejected(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/payouts/recalculate::req-2"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	r, reached := idempotencyRouter(rdb)
	w := postRecalculate(r, "req-2")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FreshKeyAcquiresLockAndContinues(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/payouts/recalculate::req-3"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	r, reached := idempotencyRouter(rdb)
	w := postRecalculate(r, "req-3")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), `"cache_key_set":true`)
	assert.Contains(t, w.Body.String(), `"lock_key_set":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
