package revenue_test

import (
	"testing"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/revenue"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookupGrossPrice_FirstMatchWins(t *testing.T) {
	// "mentoria individual" harus kena baris spesifik, bukan baris "mentoria".
	assert.Equal(t, int64(2_500_000), revenue.LookupGrossPrice("Mentoria Individual Premium"))
	assert.Equal(t, int64(1_200_000), revenue.LookupGrossPrice("Mentoria em Grupo"))
	assert.Equal(t, int64(1_500_000), revenue.LookupGrossPrice("Programa EFEITO ALAVANCA 2025"))
	assert.Equal(t, int64(0), revenue.LookupGrossPrice("produto desconhecido"))
}

func TestSaleGross_InstallmentsNeverCount(t *testing.T) {
	id := uuid.New()
	firstIDs := map[uuid.UUID]struct{}{id: {}}

	first := revenue.SaleTransaction{
		ID:          id,
		ParcelaNum:  1,
		ProductName: "Mentoria Individual",
	}
	second := revenue.SaleTransaction{
		ID:          id,
		ParcelaNum:  2,
		ProductName: "Mentoria Individual",
	}

	assert.Equal(t, int64(2_500_000), revenue.SaleGross(first, firstIDs))
	assert.Equal(t, int64(0), revenue.SaleGross(second, firstIDs))
}

func TestSaleGross_OverrideWinsOutright(t *testing.T) {
	override := decimal.NewFromFloat(1234.56)
	tx := revenue.SaleTransaction{
		ID:            uuid.New(),
		ParcelaNum:    1,
		ProductName:   "Mentoria Individual",
		ValorOverride: &override,
	}

	// Override menang walau transaksi bukan yang pertama di grupnya.
	assert.Equal(t, int64(123_456), revenue.SaleGross(tx, map[uuid.UUID]struct{}{}))
}

func TestSaleGross_OnlyFirstInGroupCounts(t *testing.T) {
	tx := revenue.SaleTransaction{
		ID:          uuid.New(),
		ParcelaNum:  1,
		ProductName: "Imersao Presencial",
	}

	assert.Equal(t, int64(0), revenue.SaleGross(tx, map[uuid.UUID]struct{}{}))
	assert.Equal(t, int64(497_000), revenue.SaleGross(tx, map[uuid.UUID]struct{}{tx.ID: {}}))
}
