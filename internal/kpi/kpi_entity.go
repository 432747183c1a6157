package kpi

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyKPI (sdr_kpi_mensal): satu baris per (rep, bulan). Ditulis oleh
// engine maupun edit manual; updated_at adalah dasar edit-protection window.
type MonthlyKPI struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SDRID                  uuid.UUID `gorm:"column:sdr_id;type:uuid;not null;index:idx_kpi_sdr_month,unique"`
	AnoMes                 string    `gorm:"column:ano_mes;type:varchar(7);not null;index:idx_kpi_sdr_month,unique"`
	Agendadas              int       `gorm:"not null;default:0"`
	Realizadas             int       `gorm:"not null;default:0"`
	NoShows                int       `gorm:"column:no_shows;not null;default:0"`
	NoShowRate             float64   `gorm:"column:no_show_rate;type:numeric(5,2);not null;default:0"`
	Tentativas             int       `gorm:"not null;default:0"`
	Organizacao            int       `gorm:"not null;default:0"`
	IntermediacoesContrato int       `gorm:"column:intermediacoes_contrato;not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (MonthlyKPI) TableName() string {
	return "sdr_kpi_mensal"
}
