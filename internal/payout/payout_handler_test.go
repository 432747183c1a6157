package payout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePayoutService struct {
	recalculateFn func(ctx context.Context, req payout.RecalculateRequest) (*payout.RecalculateSummary, error)
}

func (f *fakePayoutService) Recalculate(ctx context.Context, req payout.RecalculateRequest) (*payout.RecalculateSummary, error) {
	return f.recalculateFn(ctx, req)
}

func (f *fakePayoutService) GetByMonth(ctx context.Context, anoMes string) ([]payout.MonthlyPayoutResponse, error) {
	return nil, nil
}

func (f *fakePayoutService) GetByID(ctx context.Context, id string) (payout.MonthlyPayoutResponse, error) {
	return payout.MonthlyPayoutResponse{}, nil
}

func recalcContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payouts/recalculate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestRecalculateHandler_MissingAnoMes(t *testing.T) {
	h := payout.NewHandler(&fakePayoutService{})
	c, w := recalcContext(t, `{}`)

	h.Recalculate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ano_mes is required", body["error"])
}

func TestRecalculateHandler_FlatSummaryShape(t *testing.T) {
	vr := int64(52_800)
	h := payout.NewHandler(&fakePayoutService{
		recalculateFn: func(ctx context.Context, req payout.RecalculateRequest) (*payout.RecalculateSummary, error) {
			assert.Equal(t, "2025-06", req.AnoMes)
			return &payout.RecalculateSummary{
				Success:             true,
				Processed:           2,
				Errors:              1,
				Total:               3,
				Results:             []payout.RepResult{{SDRID: "a"}, {SDRID: "b"}},
				CalendarIfoodMensal: &vr,
				BURevenue:           map[string]int64{"incorporador": 1_500_000},
				UltrametaHit:        map[string]bool{"incorporador": true},
				DivinaHit:           map[string]bool{"incorporador": false},
			}, nil
		},
	})
	c, w := recalcContext(t, `{"ano_mes":"2025-06"}`)

	h.Recalculate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["processed"])
	assert.Equal(t, float64(1), body["errors"])
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["results"], 2)
	assert.Equal(t, float64(52_800), body["calendarIfoodMensal"])
	assert.NotNil(t, body["buRevenue"])
	assert.NotNil(t, body["ultrametaHit"])
	assert.NotNil(t, body["divinaHit"])
	// Bukan envelope standar.
	assert.NotContains(t, body, "ok")
	assert.NotContains(t, body, "data")
}

func TestRecalculateHandler_NoRepsMessage(t *testing.T) {
	h := payout.NewHandler(&fakePayoutService{
		recalculateFn: func(ctx context.Context, req payout.RecalculateRequest) (*payout.RecalculateSummary, error) {
			return &payout.RecalculateSummary{
				Success:   true,
				Message:   "No SDRs to process",
				Processed: 0,
			}, nil
		},
	})
	c, w := recalcContext(t, `{"ano_mes":"2025-06","sdr_id":"missing"}`)

	h.Recalculate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "No SDRs to process", body["message"])
	assert.Equal(t, float64(0), body["processed"])
	assert.NotContains(t, body, "results")
}
