package revenue

import (
	"context"
	"fmt"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Squad (business unit) yang masing-masing ledger bawa revenue-nya.
const (
	SquadIncorporador = "incorporador"
	SquadConsorcio    = "consorcio"
	SquadLeilao       = "leilao"
)

//go:generate mockgen -source=revenue_service.go -destination=mock/revenue_service_mock.go -package=mock
type Service interface {
	// MonthRevenue mengembalikan total revenue per squad (cents) untuk bulan.
	MonthRevenue(ctx context.Context, month period.Month) (map[string]int64, error)
}

type service struct {
	repo   Repository
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("revenue.service"),
	}
}

func (s *service) MonthRevenue(ctx context.Context, month period.Month) (map[string]int64, error) {
	// Recalculation bisa dipicu bersamaan dari HTTP dan consumer;
	// singleflight memastikan agregasi bulan yang sama hanya jalan sekali.
	v, err, _ := s.group.Do(month.AnoMes, func() (any, error) {
		return s.monthRevenue(ctx, month)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]int64), nil
}

func (s *service) monthRevenue(ctx context.Context, month period.Month) (map[string]int64, error) {
	sales, err := s.repo.FindSalesByPeriod(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("load sales ledger: %w", err)
	}

	firstIDs, err := s.repo.FirstTransactionIDs(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("load first transaction ids: %w", err)
	}

	var salesTotal int64
	for _, tx := range sales {
		salesTotal += SaleGross(tx, firstIDs)
	}

	consorcio, err := s.repo.SumConsortiumCredit(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("sum consortium credit: %w", err)
	}

	leilao, err := s.repo.SumAuctionNet(ctx, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("sum auction net: %w", err)
	}

	result := map[string]int64{
		SquadIncorporador: salesTotal,
		SquadConsorcio:    consorcio.Mul(centsFactor).IntPart(),
		SquadLeilao:       leilao.Mul(centsFactor).IntPart(),
	}

	s.logger.Info("month revenue aggregated",
		zap.String("ano_mes", month.AnoMes),
		zap.Int64(SquadIncorporador, result[SquadIncorporador]),
		zap.Int64(SquadConsorcio, result[SquadConsorcio]),
		zap.Int64(SquadLeilao, result[SquadLeilao]),
	)

	return result, nil
}

// SaleGross menerapkan aturan dedup ledger vendas:
//  1. parcela > 1 tidak pernah membawa revenue
//  2. valor_override menang mutlak
//  3. selain itu hanya transaksi pertama per (cliente, produto) yang dihitung,
//     dengan harga dari price table (bukan nilai yang tercatat)
func SaleGross(tx SaleTransaction, firstIDs map[uuid.UUID]struct{}) int64 {
	if tx.ParcelaNum > 1 {
		return 0
	}

	if tx.ValorOverride != nil {
		return tx.ValorOverride.Mul(centsFactor).IntPart()
	}

	if _, ok := firstIDs[tx.ID]; !ok {
		return 0
	}

	return LookupGrossPrice(tx.ProductName)
}

// centsFactor mengubah nilai ledger (reais, numeric) ke cents.
var centsFactor = decimal.NewFromInt(100)
