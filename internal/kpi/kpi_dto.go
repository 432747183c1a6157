package kpi

type ManualEditRequest struct {
	Agendadas   *int `json:"agendadas" binding:"omitempty,min=0"`
	Realizadas  *int `json:"realizadas" binding:"omitempty,min=0"`
	NoShows     *int `json:"no_shows" binding:"omitempty,min=0"`
	Tentativas  *int `json:"tentativas" binding:"omitempty,min=0"`
	Organizacao *int `json:"organizacao" binding:"omitempty,min=0"`
}

type MonthlyKPIResponse struct {
	ID                     string  `json:"id"`
	SDRID                  string  `json:"sdr_id"`
	AnoMes                 string  `json:"ano_mes"`
	Agendadas              int     `json:"agendadas"`
	Realizadas             int     `json:"realizadas"`
	NoShows                int     `json:"no_shows"`
	NoShowRate             float64 `json:"no_show_rate"`
	Tentativas             int     `json:"tentativas"`
	Organizacao            int     `json:"organizacao"`
	IntermediacoesContrato int     `json:"intermediacoes_contrato"`
	UpdatedAt              string  `json:"updated_at"`
}

func mapToResponse(row MonthlyKPI) MonthlyKPIResponse {
	return MonthlyKPIResponse{
		ID:                     row.ID.String(),
		SDRID:                  row.SDRID.String(),
		AnoMes:                 row.AnoMes,
		Agendadas:              row.Agendadas,
		Realizadas:             row.Realizadas,
		NoShows:                row.NoShows,
		NoShowRate:             row.NoShowRate,
		Tentativas:             row.Tentativas,
		Organizacao:            row.Organizacao,
		IntermediacoesContrato: row.IntermediacoesContrato,
		UpdatedAt:              row.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
