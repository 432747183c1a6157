package salesrep

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSDR    = "sdr"
	RoleCloser = "closer"
)

// SalesRep adalah direktori rep (SDR dan closer). Baris ini dikelola oleh
// admin UI; engine hanya membaca.
type SalesRep struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `gorm:"column:nome;not null"`
	Email          *string    `gorm:"uniqueIndex"`
	Role           string     `gorm:"type:varchar(10);not null;default:'sdr';index"`
	MetaDiaria     int        `gorm:"column:meta_diaria;not null;default:0"`
	Squad          string     `gorm:"type:varchar(40);not null;index"`
	Active         bool       `gorm:"column:ativo;not null;default:true;index"`
	Nivel          int        `gorm:"not null;default:1"`
	HireDate       *time.Time `gorm:"column:data_contratacao;type:date"`
	CargoCatalogID *uuid.UUID `gorm:"column:cargo_catalogo_id;type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SalesRep) TableName() string {
	return "sdr"
}

func (r SalesRep) IsCloser() bool {
	return r.Role == RoleCloser
}

// HiredBeforeMonth menentukan eligibility untuk hadiah ultrameta tim:
// hire date harus sebelum hari pertama bulan; tanpa hire date = eligible.
func (r SalesRep) HiredBeforeMonth(monthStart time.Time) bool {
	if r.HireDate == nil {
		return true
	}
	return r.HireDate.Before(monthStart)
}
