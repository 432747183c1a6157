package revenue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=revenue_repo.go -destination=mock/revenue_repo_mock.go -package=mock
type Repository interface {
	FindSalesByPeriod(ctx context.Context, from, to time.Time) ([]SaleTransaction, error)
	FirstTransactionIDs(ctx context.Context, from, to time.Time) (map[uuid.UUID]struct{}, error)
	SumConsortiumCredit(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumAuctionNet(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindSalesByPeriod(ctx context.Context, from, to time.Time) ([]SaleTransaction, error) {
	var sales []SaleTransaction
	err := r.db.WithContext(ctx).
		Where("data_venda BETWEEN ? AND ?", from, to).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

// FirstTransactionIDs mengembalikan id transaksi pertama per grup
// (cliente, produto) dalam periode. "Pertama" = created_at paling awal.
func (r *repository) FirstTransactionIDs(ctx context.Context, from, to time.Time) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (cliente_id, produto) id
		FROM vendas
		WHERE data_venda BETWEEN ? AND ?
		ORDER BY cliente_id, produto, created_at ASC
	`, from, to).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *repository) SumConsortiumCredit(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&ConsortiumContract{}).
		Select("COALESCE(SUM(valor_credito), 0)").
		Where("data_contrato BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *repository) SumAuctionNet(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&AuctionSale{}).
		Select("COALESCE(SUM(valor_liquido), 0)").
		Where("categoria = ?", "arremate").
		Where("data_venda BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	return total, err
}
