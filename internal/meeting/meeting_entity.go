package meeting

import (
	"time"

	"github.com/google/uuid"
)

// Status participant reuniao.
const (
	StatusCompleted    = "completed"
	StatusContractPaid = "contract_paid"
	StatusRefunded     = "refunded"
	StatusNoShow       = "no_show"
)

type Closer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:nome;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Closer) TableName() string {
	return "closers"
}

// MeetingSlot (reunioes): slot agenda yang di-assign ke satu closer.
type MeetingSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CloserID    uuid.UUID `gorm:"column:closer_id;type:uuid;not null;index"`
	ScheduledAt time.Time `gorm:"column:agendado_em;not null;index"`
	CreatedAt   time.Time
}

func (MeetingSlot) TableName() string {
	return "reunioes"
}

// Attendee (reunioes_participantes). contract_paid_at null menandai baris
// legacy; kontraknya dihitung lewat bulan slot-nya.
type Attendee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SlotID         uuid.UUID  `gorm:"column:reuniao_id;type:uuid;not null;index"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	ContractPaidAt *time.Time `gorm:"column:contract_paid_at"`
	CreatedAt      time.Time
}

func (Attendee) TableName() string {
	return "reunioes_participantes"
}

// Metrics adalah hasil mentah koleksi metrik satu rep untuk satu bulan.
type Metrics struct {
	Agendadas  int
	Realizadas int
	NoShows    int
	NoShowRate float64
	Contratos  int
}
