package calendar

import "time"

// MonthCalendar adalah kalender hari kerja per bulan. vr_mensal (kalau diisi)
// meng-override nilai VR bulanan dari acordo.
type MonthCalendar struct {
	AnoMes        string `gorm:"column:ano_mes;type:varchar(7);primaryKey"`
	DiasUteis     int    `gorm:"column:dias_uteis;not null;default:22"`
	VRMensalCents *int64 `gorm:"column:vr_mensal;type:bigint"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MonthCalendar) TableName() string {
	return "calendario_mensal"
}
