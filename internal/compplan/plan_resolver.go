package compplan

import (
	"context"
	"errors"
	"strings"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pembagian variavel saat sintesis acordo: agendamento 35%, realizada 55%,
// tentativas 0%, organizacao 10%.
const (
	splitAgendamentoPct = 35
	splitRealizadaPct   = 55
	splitTentativasPct  = 0
	splitOrganizacaoPct = 10
)

//go:generate mockgen -source=plan_resolver.go -destination=mock/plan_resolver_mock.go -package=mock
type Resolver interface {
	// Resolve mencari acordo aktif rep untuk bulan, atau mensintesis satu
	// dari cargo/nivel defaults dan mem-persist-nya.
	Resolve(ctx context.Context, rep salesrep.SalesRep, month period.Month) (*CompensationPlan, error)
}

type resolver struct {
	repo   Repository
	logger *zap.Logger
}

func NewResolver(repo Repository) Resolver {
	return &resolver{
		repo:   repo,
		logger: zap.L().Named("compplan.resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, rep salesrep.SalesRep, month period.Month) (*CompensationPlan, error) {
	plan, err := r.repo.FindCurrentPlan(ctx, rep.ID.String(), month.Start)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	synthesized := r.synthesize(ctx, rep, month)

	if err := r.repo.Create(ctx, synthesized); err != nil {
		// Run paralel bisa sudah membuat acordo yang sama; pakai yang ada.
		if isUniquePlanViolation(err) {
			r.logger.Warn("plan already created concurrently, reusing",
				zap.String("sdr_id", rep.ID.String()),
				zap.String("ano_mes", month.AnoMes),
			)
			return r.repo.FindCurrentPlan(ctx, rep.ID.String(), month.Start)
		}
		return nil, err
	}

	r.logger.Info("synthesized compensation plan",
		zap.String("sdr_id", rep.ID.String()),
		zap.String("ano_mes", month.AnoMes),
		zap.Int64("fixo", synthesized.FixoCents),
		zap.Int64("variavel", synthesized.VariavelTotalCents),
	)

	return synthesized, nil
}

func (r *resolver) synthesize(ctx context.Context, rep salesrep.SalesRep, month period.Month) *CompensationPlan {
	nivel := rep.Nivel
	if nivel <= 0 {
		nivel = defaultLevel
	}

	def := levelDefault(nivel)
	fixo := def.FixoCents
	variavel := def.VariavelCents

	// Cargo dengan OTE positif menang atas tabel nivel.
	if rep.CargoCatalogID != nil {
		catalog, err := r.repo.FindJobCatalog(ctx, rep.CargoCatalogID.String())
		if err != nil {
			r.logger.Warn("job catalog lookup failed, using level defaults",
				zap.String("sdr_id", rep.ID.String()),
				zap.Error(err),
			)
		} else if catalog.OTECents > 0 {
			fixo = catalog.FixoCents
			variavel = catalog.VariavelCents
		}
	}

	fim := month.End
	return &CompensationPlan{
		ID:                 uuid.New(),
		SDRID:              rep.ID,
		VigenciaInicio:     month.Start,
		VigenciaFim:        &fim,
		FixoCents:          fixo,
		VariavelTotalCents: variavel,
		ValorMetaRPGCents:  variavel * splitAgendamentoPct / 100,
		ValorDocsCents:     variavel * splitRealizadaPct / 100,
		ValorTentCents:     variavel * splitTentativasPct / 100,
		ValorOrgCents:      variavel * splitOrganizacaoPct / 100,
		VRMensalCents:      vrMensalByLevel(nivel),
		VRUltrametaCents:   vrUltrametaCents,
		DiasUteis:          19,
	}
}

func isUniquePlanViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
