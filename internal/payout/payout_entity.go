package payout

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft    = "DRAFT"
	StatusApproved = "APPROVED"
	StatusLocked   = "LOCKED"
)

// MonthlyPayout (sdr_pagamentos_mensal): hasil recalculation per (rep, bulan).
// Baris LOCKED/APPROVED tidak pernah ditulis ulang oleh engine;
// ultrameta_autorizado diset manual oleh admin dan selalu dibawa ke run
// berikutnya apa adanya.
type MonthlyPayout struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SDRID  uuid.UUID `gorm:"column:sdr_id;type:uuid;not null;index:idx_payout_sdr_month,unique"`
	AnoMes string    `gorm:"column:ano_mes;type:varchar(7);not null;index:idx_payout_sdr_month,unique"`

	AgendamentoPct   float64 `gorm:"column:agendamento_pct;type:numeric(6,2);not null;default:0"`
	AgendamentoMult  float64 `gorm:"column:agendamento_mult;type:numeric(3,2);not null;default:0"`
	AgendamentoCents int64   `gorm:"column:agendamento_valor;type:bigint;not null;default:0"`

	RealizadaPct   float64 `gorm:"column:realizada_pct;type:numeric(6,2);not null;default:0"`
	RealizadaMult  float64 `gorm:"column:realizada_mult;type:numeric(3,2);not null;default:0"`
	RealizadaCents int64   `gorm:"column:realizada_valor;type:bigint;not null;default:0"`

	TentativasPct   float64 `gorm:"column:tentativas_pct;type:numeric(6,2);not null;default:0"`
	TentativasMult  float64 `gorm:"column:tentativas_mult;type:numeric(3,2);not null;default:0"`
	TentativasCents int64   `gorm:"column:tentativas_valor;type:bigint;not null;default:0"`

	OrganizacaoPct   float64 `gorm:"column:organizacao_pct;type:numeric(6,2);not null;default:0"`
	OrganizacaoMult  float64 `gorm:"column:organizacao_mult;type:numeric(3,2);not null;default:0"`
	OrganizacaoCents int64   `gorm:"column:organizacao_valor;type:bigint;not null;default:0"`

	ContratosPct   float64 `gorm:"column:contratos_pct;type:numeric(6,2);not null;default:0"`
	ContratosMult  float64 `gorm:"column:contratos_mult;type:numeric(3,2);not null;default:0"`
	ContratosCents int64   `gorm:"column:contratos_valor;type:bigint;not null;default:0"`

	VendasParceriaPct   float64 `gorm:"column:vendas_parceria_pct;type:numeric(6,2);not null;default:0"`
	VendasParceriaMult  float64 `gorm:"column:vendas_parceria_mult;type:numeric(3,2);not null;default:0"`
	VendasParceriaCents int64   `gorm:"column:vendas_parceria_valor;type:bigint;not null;default:0"`

	// Dilacak untuk reporting saja, tidak masuk total.
	NoShowRate        float64 `gorm:"column:no_show_rate;type:numeric(5,2);not null;default:0"`
	NoShowPerformance float64 `gorm:"column:no_show_performance;type:numeric(6,2);not null;default:0"`

	PerformanceTotal float64 `gorm:"column:performance_total;type:numeric(6,2);not null;default:0"`

	FixoCents     int64 `gorm:"column:fixo_valor;type:bigint;not null;default:0"`
	VariavelCents int64 `gorm:"column:variavel_total;type:bigint;not null;default:0"`
	TotalCents    int64 `gorm:"column:total;type:bigint;not null;default:0"`

	VRBaseCents         int64 `gorm:"column:vr_base;type:bigint;not null;default:0"`
	VRUltrametaCents    int64 `gorm:"column:vr_ultrameta;type:bigint;not null;default:0"`
	VRTotalCents        int64 `gorm:"column:vr_total;type:bigint;not null;default:0"`
	UltrametaAutorizado bool  `gorm:"column:ultrameta_autorizado;not null;default:false"`

	Status string `gorm:"type:varchar(10);not null;default:'DRAFT'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MonthlyPayout) TableName() string {
	return "sdr_pagamentos_mensal"
}

// Editable melapor apakah engine boleh menulis ulang baris ini.
func (p MonthlyPayout) Editable() bool {
	return p.Status != StatusLocked && p.Status != StatusApproved
}
