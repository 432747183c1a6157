package squad

import "gorm.io/gorm"

func Scope(squad string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("squad = ?", squad)
	}
}

func MonthScope(anoMes string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ano_mes = ?", anoMes)
	}
}
