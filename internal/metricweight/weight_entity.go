package metricweight

import (
	"time"

	"github.com/google/uuid"
)

// Nama metrik yang dikenal calculator.
const (
	MetricAgendamento    = "agendamento"
	MetricRealizada      = "realizada"
	MetricTentativas     = "tentativas"
	MetricOrganizacao    = "organizacao"
	MetricContratos      = "contratos"
	MetricVendasParceria = "vendas_parceria"
)

// MetricWeight (metricas_peso_mensal): konfigurasi dinamis peso + target per
// metrik, keyed (bulan, cargo, squad). Baris squad=null adalah fallback
// generik.
type MetricWeight struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnoMes         string    `gorm:"column:ano_mes;type:varchar(7);not null;index"`
	CargoCatalogID uuid.UUID `gorm:"column:cargo_catalogo_id;type:uuid;not null;index"`
	Squad          *string   `gorm:"type:varchar(40)"`
	Metrica        string    `gorm:"type:varchar(30);not null"`
	PesoPercent    float64   `gorm:"column:peso_percentual;type:numeric(5,2);not null;default:0"`
	MetaValor      *float64  `gorm:"column:meta_valor;type:numeric(10,2)"`
	MetaPercentual *float64  `gorm:"column:meta_percentual;type:numeric(5,2)"`
	Active         bool      `gorm:"column:ativo;not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MetricWeight) TableName() string {
	return "metricas_peso_mensal"
}
