package meeting

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	// AggregateSDRMonth adalah rutin agregasi backend untuk SDR: booked dan
	// completed count, scoped ke email rep dan rentang tanggal.
	AggregateSDRMonth(ctx context.Context, email string, from, to time.Time) (booked int, completed int, err error)

	FindCloserByEmail(ctx context.Context, email string) (*Closer, error)
	CountSlotsByCloser(ctx context.Context, closerID string, from, to time.Time) (int, error)
	CountAttendeesByStatus(ctx context.Context, closerID string, from, to time.Time, statuses []string) (int, error)
	CountContractsPaidInMonth(ctx context.Context, closerID string, from, to time.Time) (int, error)
	CountLegacyContracts(ctx context.Context, closerID string, from, to time.Time) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AggregateSDRMonth(ctx context.Context, email string, from, to time.Time) (int, int, error) {
	var result struct {
		Booked    int
		Completed int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS booked,
			COUNT(*) FILTER (WHERE rp.status IN (?, ?, ?)) AS completed
		FROM reunioes_participantes rp
		JOIN reunioes re ON re.id = rp.reuniao_id
		WHERE rp.sdr_email = ?
			AND re.agendado_em BETWEEN ? AND ?
	`, StatusCompleted, StatusContractPaid, StatusRefunded, email, from, to).
		Scan(&result).Error

	return result.Booked, result.Completed, err
}

func (r *repository) FindCloserByEmail(ctx context.Context, email string) (*Closer, error) {
	var closer Closer
	err := r.db.WithContext(ctx).First(&closer, "email = ?", email).Error
	return &closer, err
}

func (r *repository) CountSlotsByCloser(ctx context.Context, closerID string, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MeetingSlot{}).
		Where("closer_id = ?", closerID).
		Where("agendado_em BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return int(count), err
}

func (r *repository) CountAttendeesByStatus(ctx context.Context, closerID string, from, to time.Time, statuses []string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendee{}).
		Joins("JOIN reunioes ON reunioes.id = reunioes_participantes.reuniao_id").
		Where("reunioes.closer_id = ?", closerID).
		Where("reunioes.agendado_em BETWEEN ? AND ?", from, to).
		Where("reunioes_participantes.status IN ?", statuses).
		Count(&count).Error
	return int(count), err
}

// CountContractsPaidInMonth: jalur baru, contract_paid_at jatuh di bulan.
func (r *repository) CountContractsPaidInMonth(ctx context.Context, closerID string, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendee{}).
		Joins("JOIN reunioes ON reunioes.id = reunioes_participantes.reuniao_id").
		Where("reunioes.closer_id = ?", closerID).
		Where("reunioes_participantes.contract_paid_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return int(count), err
}

// CountLegacyContracts: jalur lama, contract_paid_at null dan status
// contract_paid, dihitung lewat bulan slot-nya.
func (r *repository) CountLegacyContracts(ctx context.Context, closerID string, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendee{}).
		Joins("JOIN reunioes ON reunioes.id = reunioes_participantes.reuniao_id").
		Where("reunioes.closer_id = ?", closerID).
		Where("reunioes_participantes.status = ?", StatusContractPaid).
		Where("reunioes_participantes.contract_paid_at IS NULL").
		Where("reunioes.agendado_em BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return int(count), err
}
