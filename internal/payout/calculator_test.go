package payout_test

import (
	"testing"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/compplan"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMultiplier_Brackets(t *testing.T) {
	cases := []struct {
		pct  float64
		want float64
	}{
		{0, 0},
		{70, 0},
		{70.9, 0},
		{71, 0.5},
		{85, 0.5},
		{86, 0.7},
		{99, 0.7},
		{100, 1.0},
		{119, 1.0},
		{120, 1.5},
		{200, 1.5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, payout.Multiplier(tc.pct), "pct=%v", tc.pct)
	}
}

func TestNoShowPerformance(t *testing.T) {
	// rate 0% => bonus penuh 150
	assert.InDelta(t, 150, payout.NoShowPerformance(0, 40), 0.001)
	// rate 30% => tepat 100
	assert.InDelta(t, 100, payout.NoShowPerformance(12, 40), 0.001)
	// rate 15% => 100 + 15/30*50 = 125
	assert.InDelta(t, 125, payout.NoShowPerformance(6, 40), 0.001)
	// rate 60% => 100 - 30/30*100 = 0
	assert.InDelta(t, 0, payout.NoShowPerformance(24, 40), 0.001)
	// rate 45% => 100 - 15/30*100 = 50
	assert.InDelta(t, 50, payout.NoShowPerformance(18, 40), 0.001)
	// tanpa agendamento: 0, bukan divide by zero
	assert.Equal(t, float64(0), payout.NoShowPerformance(5, 0))
}

func sdrPlan() compplan.CompensationPlan {
	return compplan.CompensationPlan{
		FixoCents:          180_000,
		VariavelTotalCents: 120_000,
		ValorMetaRPGCents:  42_000,
		ValorDocsCents:     66_000,
		ValorTentCents:     0,
		ValorOrgCents:      12_000,
		VRMensalCents:      52_800,
		VRUltrametaCents:   30_000,
	}
}

// Skenario: SDR meta diaria 2, 20 hari kerja, 38 agendadas dari target 40
// (95% => 0.7), 25 realizadas dari target round(0.7*38)=27 (~92.6% => 0.7).
func TestCalculate_StaticPath_SDRScenario(t *testing.T) {
	rep := salesrep.SalesRep{
		ID:         uuid.New(),
		Role:       salesrep.RoleSDR,
		MetaDiaria: 2,
	}
	res := payout.Calculate(payout.CalcInput{
		Rep:       rep,
		DiasUteis: 20,
		KPI: kpi.MonthlyKPI{
			Agendadas:  38,
			Realizadas: 25,
		},
		Plan:        sdrPlan(),
		VRBaseCents: 52_800,
	})

	assert.InDelta(t, 95, res.Agendamento.Pct, 0.001)
	assert.Equal(t, 0.7, res.Agendamento.Multiplier)
	assert.Equal(t, int64(29_400), res.Agendamento.ValueCents)

	assert.InDelta(t, 92.59, res.Realizada.Pct, 0.01)
	assert.Equal(t, 0.7, res.Realizada.Multiplier)
	assert.Equal(t, int64(46_200), res.Realizada.ValueCents)

	assert.Equal(t, int64(0), res.Tentativas.ValueCents)
	assert.Equal(t, int64(0), res.Organizacao.ValueCents)

	assert.Equal(t, int64(75_600), res.VariavelCents)
	assert.Equal(t, int64(255_600), res.TotalCents)

	wantPerf := (95 + 25.0/27*100 + 0 + 0) / 4
	assert.InDelta(t, wantPerf, res.PerformanceTotal, 0.01)

	// Performa < 100, ultrameta tim tidak tercapai: VR hanya base.
	assert.Equal(t, int64(52_800), res.VRTotalCents)
	assert.Equal(t, int64(0), res.VRUltrametaCents)
}

func TestCalculate_StaticPath_CloserSkipsAttempts(t *testing.T) {
	rep := salesrep.SalesRep{
		ID:         uuid.New(),
		Role:       salesrep.RoleCloser,
		MetaDiaria: 2,
	}
	plan := sdrPlan()
	plan.ValorTentCents = 10_000

	res := payout.Calculate(payout.CalcInput{
		Rep:       rep,
		DiasUteis: 20,
		KPI: kpi.MonthlyKPI{
			Agendadas:  40,
			Realizadas: 28,
			Tentativas: 9_999,
		},
		Plan: plan,
	})

	assert.Equal(t, int64(0), res.Tentativas.ValueCents)
	assert.Equal(t, float64(0), res.Tentativas.Pct)

	// Performa closer: rata-rata dua pct, bukan empat.
	wantPerf := (res.Agendamento.CappedPct + res.Realizada.CappedPct) / 2
	assert.InDelta(t, wantPerf, res.PerformanceTotal, 0.001)
}

func TestCalculate_StretchBonus_Tiers(t *testing.T) {
	rep := salesrep.SalesRep{ID: uuid.New(), Role: salesrep.RoleSDR, MetaDiaria: 2}
	base := payout.CalcInput{
		Rep:       rep,
		DiasUteis: 20,
		KPI:       kpi.MonthlyKPI{},
		Plan:      sdrPlan(),

		VRBaseCents:      52_800,
		TeamVRPrizeCents: 80_000,
	}

	// Tim tercapai + sudah bekerja sebelum bulan: hadiah tim, walau performa 0.
	in := base
	in.UltrametaHit = true
	in.HiredBeforeMonth = true
	res := payout.Calculate(in)
	assert.Equal(t, int64(80_000), res.VRUltrametaCents)
	assert.Equal(t, int64(132_800), res.VRTotalCents)

	// Tim tercapai tapi masuk di tengah bulan: nol.
	in = base
	in.UltrametaHit = true
	in.HiredBeforeMonth = false
	res = payout.Calculate(in)
	assert.Equal(t, int64(0), res.VRUltrametaCents)

	// Tim tidak tercapai, performa sendiri >= 100: vr_ultrameta acordo.
	in = base
	in.HiredBeforeMonth = true
	in.KPI = kpi.MonthlyKPI{
		Agendadas:   48, // 120% dari 40
		Realizadas:  34, // 100% dari round(0.7*48)=34
		Tentativas:  1_680,
		Organizacao: 100,
	}
	res = payout.Calculate(in)
	assert.GreaterOrEqual(t, res.PerformanceTotal, float64(100))
	assert.Equal(t, int64(30_000), res.VRUltrametaCents)

	// Tidak tercapai dan performa < 100: nol.
	in = base
	in.HiredBeforeMonth = true
	res = payout.Calculate(in)
	assert.Equal(t, int64(0), res.VRUltrametaCents)
}

func TestCalculate_DynamicPath(t *testing.T) {
	metaDiaria := 2.0
	contratosPct := 25.0
	pesoContratos := 20.0

	rep := salesrep.SalesRep{ID: uuid.New(), Role: salesrep.RoleCloser, MetaDiaria: 2}
	weights := []metricweight.MetricWeight{
		{Metrica: metricweight.MetricRealizada, MetaValor: &metaDiaria, PesoPercent: 55},
		{Metrica: metricweight.MetricContratos, MetaPercentual: &contratosPct, PesoPercent: pesoContratos},
		// Metrik SDR di config tidak membayar closer.
		{Metrica: metricweight.MetricTentativas, PesoPercent: 10},
	}
	plan := sdrPlan()
	plan.ValorTentCents = 10_000

	res := payout.Calculate(payout.CalcInput{
		Rep:       rep,
		DiasUteis: 20,
		KPI: kpi.MonthlyKPI{
			Agendadas:              44,
			Realizadas:             40, // target 2*20=40 => 100% => 1.0
			IntermediacoesContrato: 10, // target 25% dari 40 = 10 => 100% => 1.0
			Tentativas:             500,
		},
		Plan:    plan,
		Weights: weights,
	})

	// Alokasi statis acordo menang untuk realizada.
	assert.Equal(t, int64(66_000), res.Realizada.ValueCents)
	assert.Equal(t, 1.0, res.Realizada.Multiplier)

	// Kontrak tidak punya alokasi statis: nilai turunan peso.
	// 120_000 * 20% * 1.0 = 24_000.
	assert.Equal(t, int64(24_000), res.Contratos.ValueCents)

	// Tentativas di-skip untuk closer walau ada baris peso.
	assert.Equal(t, int64(0), res.Tentativas.ValueCents)

	assert.InDelta(t, 100, res.PerformanceTotal, 0.001)
	assert.Equal(t, int64(90_000), res.VariavelCents)
}

func TestCalculate_ZeroTargetYieldsZeroPct(t *testing.T) {
	rep := salesrep.SalesRep{ID: uuid.New(), Role: salesrep.RoleSDR, MetaDiaria: 0}
	res := payout.Calculate(payout.CalcInput{
		Rep:       rep,
		DiasUteis: 20,
		KPI:       kpi.MonthlyKPI{Agendadas: 10},
		Plan:      sdrPlan(),
	})

	assert.Equal(t, float64(0), res.Agendamento.Pct)
	assert.Equal(t, float64(0), res.Agendamento.Multiplier)
	assert.Equal(t, int64(0), res.Agendamento.ValueCents)
}
