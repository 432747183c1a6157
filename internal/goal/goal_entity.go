package goal

import (
	"time"

	"github.com/google/uuid"
)

const (
	PrizeDivinaSDR    = "divina_sdr"
	PrizeDivinaCloser = "divina_closer"
)

// TeamMonthlyGoal menyimpan threshold revenue tim per (bulan, squad):
// ultrameta (bonus VR) dan meta divina (hadiah top performer).
type TeamMonthlyGoal struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnoMes                  string    `gorm:"column:ano_mes;type:varchar(7);not null;index:idx_goal_month_squad,unique"`
	Squad                   string    `gorm:"type:varchar(40);not null;index:idx_goal_month_squad,unique"`
	UltrametaValorCents     int64     `gorm:"column:ultrameta_valor;type:bigint;not null;default:0"`
	UltrametaPremioVRCents  int64     `gorm:"column:ultrameta_premio_vr;type:bigint;not null;default:0"`
	DivinaValorCents        int64     `gorm:"column:divina_valor;type:bigint;not null;default:0"`
	DivinaPremioSDRCents    int64     `gorm:"column:divina_premio_sdr;type:bigint;not null;default:0"`
	DivinaPremioCloserCents int64     `gorm:"column:divina_premio_closer;type:bigint;not null;default:0"`
	Active                  bool      `gorm:"column:ativo;not null;default:true"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (TeamMonthlyGoal) TableName() string {
	return "metas_time_mensal"
}

// TeamGoalWinner adalah satu baris per (goal, jenis hadiah). Di-upsert setiap
// recalculation; flag autorizado tidak pernah di-reset oleh engine.
type TeamGoalWinner struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoalID     uuid.UUID `gorm:"column:meta_id;type:uuid;not null;index:idx_winner_goal_prize,unique"`
	PrizeType  string    `gorm:"column:tipo_premio;type:varchar(20);not null;index:idx_winner_goal_prize,unique"`
	SDRID      uuid.UUID `gorm:"column:sdr_id;type:uuid;not null"`
	Autorizado bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TeamGoalWinner) TableName() string {
	return "metas_time_vencedores"
}
