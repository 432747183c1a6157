package payout

type RecalculateRequest struct {
	SDRID  *string `json:"sdr_id"`
	AnoMes string  `json:"ano_mes"`
}

// RepResult adalah satu baris hasil di dalam summary recalculation.
type RepResult struct {
	SDRID            string  `json:"sdr_id"`
	Nome             string  `json:"nome"`
	Role             string  `json:"role"`
	Squad            string  `json:"squad"`
	PerformanceTotal float64 `json:"performance_total"`
	VariavelCents    int64   `json:"variavel_total"`
	TotalCents       int64   `json:"total"`
	VRTotalCents     int64   `json:"vr_total"`
	Status           string  `json:"status"`
}

// RecalculateSummary adalah response datar endpoint recalculate. Bentuknya
// kontrak dengan UI admin lama, bukan envelope standar response.Success.
type RecalculateSummary struct {
	Success             bool             `json:"success"`
	Message             string           `json:"message,omitempty"`
	Processed           int              `json:"processed"`
	Errors              int              `json:"errors"`
	Total               int              `json:"total"`
	Results             []RepResult      `json:"results"`
	CalendarIfoodMensal *int64           `json:"calendarIfoodMensal"`
	BURevenue           map[string]int64 `json:"buRevenue"`
	UltrametaHit        map[string]bool  `json:"ultrametaHit"`
	DivinaHit           map[string]bool  `json:"divinaHit"`
}

type MonthlyPayoutResponse struct {
	ID                  string  `json:"id"`
	SDRID               string  `json:"sdr_id"`
	AnoMes              string  `json:"ano_mes"`
	AgendamentoPct      float64 `json:"agendamento_pct"`
	AgendamentoCents    int64   `json:"agendamento_valor"`
	RealizadaPct        float64 `json:"realizada_pct"`
	RealizadaCents      int64   `json:"realizada_valor"`
	TentativasPct       float64 `json:"tentativas_pct"`
	TentativasCents     int64   `json:"tentativas_valor"`
	OrganizacaoPct      float64 `json:"organizacao_pct"`
	OrganizacaoCents    int64   `json:"organizacao_valor"`
	ContratosPct        float64 `json:"contratos_pct"`
	ContratosCents      int64   `json:"contratos_valor"`
	VendasParceriaPct   float64 `json:"vendas_parceria_pct"`
	VendasParceriaCents int64   `json:"vendas_parceria_valor"`
	NoShowRate          float64 `json:"no_show_rate"`
	NoShowPerformance   float64 `json:"no_show_performance"`
	PerformanceTotal    float64 `json:"performance_total"`
	FixoCents           int64   `json:"fixo_valor"`
	VariavelCents       int64   `json:"variavel_total"`
	TotalCents          int64   `json:"total"`
	VRBaseCents         int64   `json:"vr_base"`
	VRUltrametaCents    int64   `json:"vr_ultrameta"`
	VRTotalCents        int64   `json:"vr_total"`
	UltrametaAutorizado bool    `json:"ultrameta_autorizado"`
	Status              string  `json:"status"`
}

func mapToResponse(row MonthlyPayout) MonthlyPayoutResponse {
	return MonthlyPayoutResponse{
		ID:                  row.ID.String(),
		SDRID:               row.SDRID.String(),
		AnoMes:              row.AnoMes,
		AgendamentoPct:      row.AgendamentoPct,
		AgendamentoCents:    row.AgendamentoCents,
		RealizadaPct:        row.RealizadaPct,
		RealizadaCents:      row.RealizadaCents,
		TentativasPct:       row.TentativasPct,
		TentativasCents:     row.TentativasCents,
		OrganizacaoPct:      row.OrganizacaoPct,
		OrganizacaoCents:    row.OrganizacaoCents,
		ContratosPct:        row.ContratosPct,
		ContratosCents:      row.ContratosCents,
		VendasParceriaPct:   row.VendasParceriaPct,
		VendasParceriaCents: row.VendasParceriaCents,
		NoShowRate:          row.NoShowRate,
		NoShowPerformance:   row.NoShowPerformance,
		PerformanceTotal:    row.PerformanceTotal,
		FixoCents:           row.FixoCents,
		VariavelCents:       row.VariavelCents,
		TotalCents:          row.TotalCents,
		VRBaseCents:         row.VRBaseCents,
		VRUltrametaCents:    row.VRUltrametaCents,
		VRTotalCents:        row.VRTotalCents,
		UltrametaAutorizado: row.UltrametaAutorizado,
		Status:              row.Status,
	}
}
