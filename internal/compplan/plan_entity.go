package compplan

import (
	"time"

	"github.com/google/uuid"
)

// CompensationPlan (acordos_comissao): satu acordo aktif per rep per bulan.
// Alokasi per metrik dipakai calculator sebagai nilai statis; kalau nol,
// calculator jatuh ke pembagian berbasis peso dari metric weight config.
type CompensationPlan struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SDRID          uuid.UUID  `gorm:"column:sdr_id;type:uuid;not null;index:idx_plan_sdr_inicio,unique"`
	VigenciaInicio time.Time  `gorm:"column:vigencia_inicio;type:date;not null;index:idx_plan_sdr_inicio,unique"`
	VigenciaFim    *time.Time `gorm:"column:vigencia_fim;type:date"`

	// Financials dalam cents (bigint) untuk hindari floating error.
	FixoCents          int64 `gorm:"column:fixo_valor;type:bigint;not null;default:0"`
	VariavelTotalCents int64 `gorm:"column:variavel_total;type:bigint;not null;default:0"`
	ValorMetaRPGCents  int64 `gorm:"column:valor_meta_rpg;type:bigint;not null;default:0"`
	ValorDocsCents     int64 `gorm:"column:valor_docs_reuniao;type:bigint;not null;default:0"`
	ValorTentCents     int64 `gorm:"column:valor_tentativas;type:bigint;not null;default:0"`
	ValorOrgCents      int64 `gorm:"column:valor_organizacao;type:bigint;not null;default:0"`
	VRMensalCents      int64 `gorm:"column:vr_mensal;type:bigint;not null;default:0"`
	VRUltrametaCents   int64 `gorm:"column:vr_ultrameta;type:bigint;not null;default:0"`

	DiasUteis int `gorm:"column:dias_uteis;not null;default:19"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompensationPlan) TableName() string {
	return "acordos_comissao"
}

// JobCatalog (cargo_catalogo): OTE default per cargo; dipakai saat sintesis
// acordo kalau rep punya cargo dengan OTE positif.
type JobCatalog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome          string    `gorm:"not null"`
	OTECents      int64     `gorm:"column:ote_valor;type:bigint;not null;default:0"`
	FixoCents     int64     `gorm:"column:fixo_valor;type:bigint;not null;default:0"`
	VariavelCents int64     `gorm:"column:variavel_valor;type:bigint;not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (JobCatalog) TableName() string {
	return "cargo_catalogo"
}
