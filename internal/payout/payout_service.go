package payout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/calendar"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/compplan"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/events"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/goal"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/meeting"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/messaging/kafka"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	payouterrors "github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout/errors"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/revenue"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/contextutil"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultDiasUteis = 22

//go:generate mockgen -source=payout_service.go -destination=mock/payout_service_mock.go -package=mock
type Service interface {
	Recalculate(ctx context.Context, req RecalculateRequest) (*RecalculateSummary, error)
	GetByMonth(ctx context.Context, anoMes string) ([]MonthlyPayoutResponse, error)
	GetByID(ctx context.Context, id string) (MonthlyPayoutResponse, error)
}

type service struct {
	repRepo        salesrep.Repository
	calendarRepo   calendar.Repository
	goalRepo       goal.Repository
	revenueService revenue.Service
	collector      meeting.Collector
	planResolver   compplan.Resolver
	weightResolver metricweight.Resolver
	reconciler     kpi.Reconciler
	payoutRepo     Repository
	winnerTracker  goal.WinnerTracker
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
}

type ServiceDeps struct {
	RepRepo        salesrep.Repository
	CalendarRepo   calendar.Repository
	GoalRepo       goal.Repository
	RevenueService revenue.Service
	Collector      meeting.Collector
	PlanResolver   compplan.Resolver
	WeightResolver metricweight.Resolver
	Reconciler     kpi.Reconciler
	PayoutRepo     Repository
	WinnerTracker  goal.WinnerTracker
	Outbox         kafka.OutboxRepository
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repRepo:        deps.RepRepo,
		calendarRepo:   deps.CalendarRepo,
		goalRepo:       deps.GoalRepo,
		revenueService: deps.RevenueService,
		collector:      deps.Collector,
		planResolver:   deps.PlanResolver,
		weightResolver: deps.WeightResolver,
		reconciler:     deps.Reconciler,
		payoutRepo:     deps.PayoutRepo,
		winnerTracker:  deps.WinnerTracker,
		outbox:         deps.Outbox,
		logger:         zap.L().Named("payout.service"),
	}
}

// Recalculate menjalankan satu pass batch untuk bulan (opsional difilter satu
// rep). Rep diproses berurutan; kegagalan satu rep hanya menaikkan counter
// error, tidak menghentikan batch.
func (s *service) Recalculate(ctx context.Context, req RecalculateRequest) (*RecalculateSummary, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	if req.AnoMes == "" {
		return nil, payouterrors.ErrAnoMesRequired
	}
	month, err := period.Parse(req.AnoMes)
	if err != nil {
		return nil, err
	}

	reps, err := s.repRepo.FindActive(ctx, req.SDRID)
	if err != nil {
		return nil, err
	}
	if len(reps) == 0 {
		return &RecalculateSummary{
			Success:   true,
			Message:   "No SDRs to process",
			Processed: 0,
		}, nil
	}

	diasUteis, vrOverride := s.resolveCalendar(ctx, month)

	goals, err := s.goalRepo.FindActiveByMonth(ctx, month.AnoMes)
	if err != nil {
		return nil, err
	}
	goalsBySquad := make(map[string]goal.TeamMonthlyGoal, len(goals))
	for _, g := range goals {
		goalsBySquad[g.Squad] = g
	}

	buRevenue, err := s.revenueService.MonthRevenue(ctx, month)
	if err != nil {
		return nil, err
	}

	ultrametaHit := make(map[string]bool, len(goalsBySquad))
	divinaHit := make(map[string]bool, len(goalsBySquad))
	for squadName, g := range goalsBySquad {
		rev := buRevenue[squadName]
		ultrametaHit[squadName] = g.UltrametaValorCents > 0 && rev >= g.UltrametaValorCents
		divinaHit[squadName] = g.DivinaValorCents > 0 && rev >= g.DivinaValorCents
	}

	summary := &RecalculateSummary{
		Success:             true,
		Total:               len(reps),
		Results:             []RepResult{},
		CalendarIfoodMensal: vrOverride,
		BURevenue:           buRevenue,
		UltrametaHit:        ultrametaHit,
		DivinaHit:           divinaHit,
	}
	scores := make([]goal.RepScore, 0, len(reps))

	for _, rep := range reps {
		row, skipped, repErr := s.processRep(ctx, rep, month, diasUteis, vrOverride, goalsBySquad, ultrametaHit)
		if repErr != nil {
			summary.Errors++
			logger.Error("rep recalculation failed",
				zap.String("sdr_id", rep.ID.String()),
				zap.String("ano_mes", month.AnoMes),
				zap.Error(repErr),
			)
			continue
		}
		if skipped {
			continue
		}

		summary.Processed++
		summary.Results = append(summary.Results, RepResult{
			SDRID:            row.SDRID.String(),
			Nome:             rep.Name,
			Role:             rep.Role,
			Squad:            rep.Squad,
			PerformanceTotal: row.PerformanceTotal,
			VariavelCents:    row.VariavelCents,
			TotalCents:       row.TotalCents,
			VRTotalCents:     row.VRTotalCents,
			Status:           row.Status,
		})
		scores = append(scores, goal.RepScore{
			SDRID:       rep.ID,
			Role:        rep.Role,
			Squad:       rep.Squad,
			Performance: row.PerformanceTotal,
		})
	}

	if err := s.winnerTracker.Track(ctx, goalsBySquad, divinaHit, scores); err != nil {
		logger.Error("winner tracking failed",
			zap.String("ano_mes", month.AnoMes),
			zap.Error(err),
		)
	}

	s.publishRecalculated(ctx, month, summary)

	logger.Info("recalculation finished",
		zap.String("ano_mes", month.AnoMes),
		zap.Int("processed", summary.Processed),
		zap.Int("errors", summary.Errors),
		zap.Int("total", summary.Total),
	)

	return summary, nil
}

// processRep menjalankan pipeline lengkap satu rep. skipped=true untuk baris
// LOCKED/APPROVED: bukan error, tidak masuk results.
func (s *service) processRep(
	ctx context.Context,
	rep salesrep.SalesRep,
	month period.Month,
	diasUteis int,
	vrOverride *int64,
	goalsBySquad map[string]goal.TeamMonthlyGoal,
	ultrametaHit map[string]bool,
) (*MonthlyPayout, bool, error) {
	collected, err := s.collector.Collect(ctx, rep, month)
	if err != nil {
		return nil, false, err
	}

	plan, err := s.planResolver.Resolve(ctx, rep, month)
	if err != nil {
		return nil, false, err
	}

	weights, err := s.weightResolver.Resolve(ctx, rep, month.AnoMes)
	if err != nil {
		return nil, false, err
	}

	kpiRow, err := s.reconciler.Reconcile(ctx, rep, month, collected)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.payoutRepo.FindByRepMonth(ctx, rep.ID.String(), month.AnoMes)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		existing = nil
	}

	if existing != nil && !existing.Editable() {
		s.logger.Info("payout row locked, skipping write",
			zap.String("sdr_id", rep.ID.String()),
			zap.String("ano_mes", month.AnoMes),
			zap.String("status", existing.Status),
		)
		return nil, true, nil
	}

	vrBase := plan.VRMensalCents
	if vrOverride != nil {
		vrBase = *vrOverride
	}

	teamGoal := goalsBySquad[rep.Squad]
	result := Calculate(CalcInput{
		Rep:              rep,
		DiasUteis:        diasUteis,
		KPI:              *kpiRow,
		Plan:             *plan,
		Weights:          weights,
		VRBaseCents:      vrBase,
		UltrametaHit:     ultrametaHit[rep.Squad],
		TeamVRPrizeCents: teamGoal.UltrametaPremioVRCents,
		HiredBeforeMonth: rep.HiredBeforeMonth(month.Start),
	})

	row := buildRow(existing, rep, month, result)
	if err := s.payoutRepo.Upsert(ctx, row); err != nil {
		return nil, false, err
	}

	return row, false, nil
}

// buildRow membawa ultrameta_autorizado dan status baris lama apa adanya.
func buildRow(existing *MonthlyPayout, rep salesrep.SalesRep, month period.Month, res CalcResult) *MonthlyPayout {
	row := &MonthlyPayout{
		ID:     uuid.New(),
		SDRID:  rep.ID,
		AnoMes: month.AnoMes,
		Status: StatusDraft,
	}
	if existing != nil {
		row.ID = existing.ID
		row.Status = existing.Status
		row.UltrametaAutorizado = existing.UltrametaAutorizado
		row.CreatedAt = existing.CreatedAt
	}

	row.AgendamentoPct = res.Agendamento.CappedPct
	row.AgendamentoMult = res.Agendamento.Multiplier
	row.AgendamentoCents = res.Agendamento.ValueCents
	row.RealizadaPct = res.Realizada.CappedPct
	row.RealizadaMult = res.Realizada.Multiplier
	row.RealizadaCents = res.Realizada.ValueCents
	row.TentativasPct = res.Tentativas.CappedPct
	row.TentativasMult = res.Tentativas.Multiplier
	row.TentativasCents = res.Tentativas.ValueCents
	row.OrganizacaoPct = res.Organizacao.CappedPct
	row.OrganizacaoMult = res.Organizacao.Multiplier
	row.OrganizacaoCents = res.Organizacao.ValueCents
	row.ContratosPct = res.Contratos.CappedPct
	row.ContratosMult = res.Contratos.Multiplier
	row.ContratosCents = res.Contratos.ValueCents
	row.VendasParceriaPct = res.VendasParceria.CappedPct
	row.VendasParceriaMult = res.VendasParceria.Multiplier
	row.VendasParceriaCents = res.VendasParceria.ValueCents

	row.NoShowRate = res.NoShowRate
	row.NoShowPerformance = res.NoShowPerformance
	row.PerformanceTotal = res.PerformanceTotal

	row.FixoCents = res.FixoCents
	row.VariavelCents = res.VariavelCents
	row.TotalCents = res.TotalCents
	row.VRBaseCents = res.VRBaseCents
	row.VRUltrametaCents = res.VRUltrametaCents
	row.VRTotalCents = res.VRTotalCents

	return row
}

func (s *service) resolveCalendar(ctx context.Context, month period.Month) (int, *int64) {
	cal, err := s.calendarRepo.FindByMonth(ctx, month.AnoMes)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("load month calendar failed", zap.Error(err))
		} else {
			s.logger.Warn("month calendar missing, using default working days",
				zap.String("ano_mes", month.AnoMes),
				zap.Int("dias_uteis", defaultDiasUteis),
			)
		}
		return defaultDiasUteis, nil
	}

	diasUteis := cal.DiasUteis
	if diasUteis <= 0 {
		diasUteis = defaultDiasUteis
	}
	return diasUteis, cal.VRMensalCents
}

// publishRecalculated menulis event ke outbox; pengiriman ke Kafka dilakukan
// worker terpisah. Gagal menulis outbox tidak menggagalkan recalculation.
func (s *service) publishRecalculated(ctx context.Context, month period.Month, summary *RecalculateSummary) {
	payload, err := json.Marshal(events.PayoutRecalculatedEvent{
		EventType:  "payout_recalculated",
		AnoMes:     month.AnoMes,
		Processed:  summary.Processed,
		Errors:     summary.Errors,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal payout_recalculated event failed", zap.Error(err))
		return
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "monthly_payout",
		AggregateID:   month.AnoMes,
		EventType:     "payout_recalculated",
		Topic:         events.PayoutRecalculatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		s.logger.Error("invalid payout_recalculated outbox event", zap.Error(err))
		return
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		s.logger.Error("write payout_recalculated outbox event failed", zap.Error(err))
	}
}

func (s *service) GetByMonth(ctx context.Context, anoMes string) ([]MonthlyPayoutResponse, error) {
	if _, err := period.Parse(anoMes); err != nil {
		return nil, err
	}

	rows, err := s.payoutRepo.FindByMonth(ctx, anoMes)
	if err != nil {
		return nil, err
	}

	res := make([]MonthlyPayoutResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (MonthlyPayoutResponse, error) {
	row, err := s.payoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyPayoutResponse{}, payouterrors.ErrPayoutNotFound
		}
		return MonthlyPayoutResponse{}, err
	}
	return mapToResponse(*row), nil
}
