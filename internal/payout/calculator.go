package payout

import (
	"math"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/compplan"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
)

const (
	// Batas atas pct sebelum lookup bracket.
	pctCap = 120

	// Target tentativas statis: 84 dial per hari kerja, khusus SDR.
	attemptsPerDay = 84
)

// CalcInput adalah semua data yang sudah di-resolve untuk satu rep. Calculator
// sendiri pure: tidak ada IO, hasil deterministik dari input.
type CalcInput struct {
	Rep       salesrep.SalesRep
	DiasUteis int
	KPI       kpi.MonthlyKPI
	Plan      compplan.CompensationPlan

	// Weights kosong berarti jalur statis (alokasi tetap acordo).
	Weights []metricweight.MetricWeight

	// VRBaseCents sudah memperhitungkan override kalender atas acordo.
	VRBaseCents      int64
	UltrametaHit     bool
	TeamVRPrizeCents int64
	HiredBeforeMonth bool
}

type MetricResult struct {
	Pct        float64
	CappedPct  float64
	Multiplier float64
	ValueCents int64
}

type CalcResult struct {
	Agendamento    MetricResult
	Realizada      MetricResult
	Tentativas     MetricResult
	Organizacao    MetricResult
	Contratos      MetricResult
	VendasParceria MetricResult

	NoShowRate        float64
	NoShowPerformance float64

	PerformanceTotal float64
	FixoCents        int64
	VariavelCents    int64
	TotalCents       int64

	VRBaseCents      int64
	VRUltrametaCents int64
	VRTotalCents     int64
}

// Multiplier adalah step function bracket atas pct yang SUDAH di-cap 120.
func Multiplier(pct float64) float64 {
	pct = CapPct(pct)
	switch {
	case pct < 71:
		return 0
	case pct <= 85:
		return 0.5
	case pct <= 99:
		return 0.7
	case pct <= 119:
		return 1.0
	default:
		return 1.5
	}
}

func CapPct(pct float64) float64 {
	if pct > pctCap {
		return pctCap
	}
	return pct
}

// NoShowPerformance adalah skor terbalik: makin sedikit no-show makin tinggi.
// Rate <= 30% memberi bonus sampai 150; di atasnya turun linear ke 0.
// Dipakai untuk reporting saja.
func NoShowPerformance(noShows, scheduled int) float64 {
	if scheduled <= 0 {
		return 0
	}
	rate := float64(noShows) / float64(scheduled) * 100

	if rate <= 30 {
		perf := 100 + (30-rate)/30*50
		return math.Min(perf, 150)
	}
	return math.Max(0, 100-(rate-30)/30*100)
}

// Calculate menjalankan satu dari dua jalur: dinamis (ada baris peso aktif)
// atau statis (alokasi tetap acordo).
func Calculate(in CalcInput) CalcResult {
	var res CalcResult
	if len(in.Weights) > 0 {
		res = calculateDynamic(in)
	} else {
		res = calculateStatic(in)
	}

	res.NoShowRate = in.KPI.NoShowRate
	res.NoShowPerformance = NoShowPerformance(in.KPI.NoShows, in.KPI.Agendadas)

	res.VariavelCents = res.Agendamento.ValueCents +
		res.Realizada.ValueCents +
		res.Tentativas.ValueCents +
		res.Organizacao.ValueCents +
		res.Contratos.ValueCents +
		res.VendasParceria.ValueCents
	res.FixoCents = in.Plan.FixoCents
	res.TotalCents = res.FixoCents + res.VariavelCents

	res.VRBaseCents = in.VRBaseCents
	res.VRUltrametaCents = stretchBonus(in, res.PerformanceTotal)
	res.VRTotalCents = res.VRBaseCents + res.VRUltrametaCents

	return res
}

func metricResult(actual, target float64, allocCents int64) MetricResult {
	var pct float64
	if target > 0 {
		pct = actual / target * 100
	}
	capped := CapPct(pct)
	mult := Multiplier(pct)
	return MetricResult{
		Pct:        pct,
		CappedPct:  capped,
		Multiplier: mult,
		ValueCents: int64(math.Round(float64(allocCents) * mult)),
	}
}

func calculateStatic(in CalcInput) CalcResult {
	var res CalcResult

	schedTarget := float64(in.Rep.MetaDiaria * in.DiasUteis)
	res.Agendamento = metricResult(float64(in.KPI.Agendadas), schedTarget, in.Plan.ValorMetaRPGCents)

	// Target realizada mengikuti agendadas AKTUAL, bukan target agendamento.
	complTarget := math.Round(0.7 * float64(in.KPI.Agendadas))
	res.Realizada = metricResult(float64(in.KPI.Realizadas), complTarget, in.Plan.ValorDocsCents)

	if !in.Rep.IsCloser() {
		attemptsTarget := float64(attemptsPerDay * in.DiasUteis)
		res.Tentativas = metricResult(float64(in.KPI.Tentativas), attemptsTarget, in.Plan.ValorTentCents)
	}

	res.Organizacao = metricResult(float64(in.KPI.Organizacao), 100, in.Plan.ValorOrgCents)

	if in.Rep.IsCloser() {
		res.PerformanceTotal = (res.Agendamento.CappedPct + res.Realizada.CappedPct) / 2
	} else {
		res.PerformanceTotal = (res.Agendamento.CappedPct +
			res.Realizada.CappedPct +
			res.Tentativas.CappedPct +
			res.Organizacao.CappedPct) / 4
	}

	return res
}

func calculateDynamic(in CalcInput) CalcResult {
	var res CalcResult

	for _, w := range in.Weights {
		if !metricAppliesTo(w.Metrica, in.Rep) {
			continue
		}

		actual := metricActual(w.Metrica, in.KPI)
		target := metricTarget(w, in)
		mr := metricResult(actual, target, metricAllocation(w, in.Plan))

		switch w.Metrica {
		case metricweight.MetricAgendamento:
			res.Agendamento = mr
		case metricweight.MetricRealizada:
			res.Realizada = mr
		case metricweight.MetricTentativas:
			res.Tentativas = mr
		case metricweight.MetricOrganizacao:
			res.Organizacao = mr
		case metricweight.MetricContratos:
			res.Contratos = mr
		case metricweight.MetricVendasParceria:
			res.VendasParceria = mr
		}
	}

	if in.Rep.IsCloser() {
		res.PerformanceTotal = (res.Realizada.CappedPct + res.Contratos.CappedPct) / 2
	} else {
		res.PerformanceTotal = (res.Agendamento.CappedPct +
			res.Realizada.CappedPct +
			res.Tentativas.CappedPct +
			res.Organizacao.CappedPct) / 4
	}

	return res
}

// metricAppliesTo membatasi set metrik per role: SDR tidak dibayar kontrak
// atau vendas parceria, closer tidak dibayar tentativas/agendamento dinamis.
func metricAppliesTo(metric string, rep salesrep.SalesRep) bool {
	if rep.IsCloser() {
		switch metric {
		case metricweight.MetricRealizada,
			metricweight.MetricOrganizacao,
			metricweight.MetricContratos,
			metricweight.MetricVendasParceria:
			return true
		}
		return false
	}

	switch metric {
	case metricweight.MetricAgendamento,
		metricweight.MetricRealizada,
		metricweight.MetricTentativas,
		metricweight.MetricOrganizacao:
		return true
	}
	return false
}

func metricActual(metric string, row kpi.MonthlyKPI) float64 {
	switch metric {
	case metricweight.MetricAgendamento:
		return float64(row.Agendadas)
	case metricweight.MetricRealizada:
		return float64(row.Realizadas)
	case metricweight.MetricTentativas:
		return float64(row.Tentativas)
	case metricweight.MetricOrganizacao:
		return float64(row.Organizacao)
	case metricweight.MetricContratos:
		return float64(row.IntermediacoesContrato)
	default:
		// vendas_parceria belum punya sumber atribusi per rep.
		return 0
	}
}

// metricTarget memilih sumber target: persentase dari metrik lain (kontrak
// sebagai % dari realizadas), lalu meta_valor x hari kerja, lalu default per
// metrik.
func metricTarget(w metricweight.MetricWeight, in CalcInput) float64 {
	if w.Metrica == metricweight.MetricContratos && w.MetaPercentual != nil {
		return *w.MetaPercentual / 100 * float64(in.KPI.Realizadas)
	}

	if w.MetaValor != nil {
		if w.Metrica == metricweight.MetricOrganizacao {
			return *w.MetaValor
		}
		return *w.MetaValor * float64(in.DiasUteis)
	}

	switch w.Metrica {
	case metricweight.MetricAgendamento:
		return float64(in.Rep.MetaDiaria * in.DiasUteis)
	case metricweight.MetricRealizada:
		return math.Round(0.7 * float64(in.KPI.Agendadas))
	case metricweight.MetricTentativas:
		return float64(attemptsPerDay * in.DiasUteis)
	case metricweight.MetricOrganizacao:
		return 100
	default:
		return 0
	}
}

// metricAllocation: alokasi statis acordo selalu menang atas nilai turunan
// peso kalau positif.
func metricAllocation(w metricweight.MetricWeight, plan compplan.CompensationPlan) int64 {
	var static int64
	switch w.Metrica {
	case metricweight.MetricAgendamento:
		static = plan.ValorMetaRPGCents
	case metricweight.MetricRealizada:
		static = plan.ValorDocsCents
	case metricweight.MetricTentativas:
		static = plan.ValorTentCents
	case metricweight.MetricOrganizacao:
		static = plan.ValorOrgCents
	}
	if static > 0 {
		return static
	}

	if w.PesoPercent > 0 {
		return int64(math.Round(float64(plan.VariavelTotalCents) * w.PesoPercent / 100))
	}
	return 0
}

// stretchBonus: tiga tingkat. Ultrameta tim tercapai + rep sudah bekerja
// sebelum bulan mulai => hadiah tim menimpa perhitungan individu. Tercapai
// tapi rep masuk di tengah bulan => nol. Selain itu performa sendiri >= 100
// => vr_ultrameta acordo.
func stretchBonus(in CalcInput, performance float64) int64 {
	if in.UltrametaHit {
		if in.HiredBeforeMonth {
			return in.TeamVRPrizeCents
		}
		return 0
	}

	if performance >= 100 {
		return in.Plan.VRUltrametaCents
	}
	return 0
}
