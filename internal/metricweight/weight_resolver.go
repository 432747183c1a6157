package metricweight

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"go.uber.org/zap"
)

//go:generate mockgen -source=weight_resolver.go -destination=mock/weight_resolver_mock.go -package=mock
type Resolver interface {
	// Resolve mengembalikan baris peso aktif untuk rep. Slice kosong berarti
	// tidak ada metrik aktif dan calculator harus pakai alokasi statis acordo.
	Resolve(ctx context.Context, rep salesrep.SalesRep, anoMes string) ([]MetricWeight, error)
}

type resolver struct {
	repo   Repository
	logger *zap.Logger
}

func NewResolver(repo Repository) Resolver {
	return &resolver{
		repo:   repo,
		logger: zap.L().Named("metricweight.resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, rep salesrep.SalesRep, anoMes string) ([]MetricWeight, error) {
	if rep.CargoCatalogID == nil {
		return nil, nil
	}
	cargoID := rep.CargoCatalogID.String()

	squadRows, err := r.repo.FindActive(ctx, anoMes, cargoID, &rep.Squad)
	if err != nil {
		return nil, err
	}

	// Baris generik selalu diambil: sumber fallback per-field dan fallback
	// penuh kalau tidak ada baris squad sama sekali.
	genericRows, err := r.repo.FindActive(ctx, anoMes, cargoID, nil)
	if err != nil {
		return nil, err
	}

	if len(squadRows) == 0 {
		return genericRows, nil
	}

	// Fallback per-field: contratos tanpa meta_percentual mewarisi nilai
	// dari baris generiknya. Bukan merge menyeluruh.
	for i := range squadRows {
		row := &squadRows[i]
		if row.Metrica != MetricContratos || row.MetaPercentual != nil {
			continue
		}
		for _, gen := range genericRows {
			if gen.Metrica == MetricContratos && gen.MetaPercentual != nil {
				v := *gen.MetaPercentual
				row.MetaPercentual = &v
				r.logger.Debug("contratos meta_percentual inherited from generic row",
					zap.String("sdr_id", rep.ID.String()),
					zap.Float64("meta_percentual", v),
				)
				break
			}
		}
	}

	return squadRows, nil
}
