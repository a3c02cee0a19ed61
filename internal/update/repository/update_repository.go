package repository

import (
	"encoding/json"

	"gorm.io/gorm"

	"notifyhub-backend/internal/update/domain"
)

// Channel is the pg_notify channel carrying freshly inserted updates.
const Channel = "atualizacoes"

// UpdateRepository defines the interface for the updates feed
type UpdateRepository interface {
	Insert(mensagem string, timestamp int64) (*domain.Update, error)
	Since(timestamp int64) ([]domain.Update, error)
	Notify(update *domain.Update) error
}

type updateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository creates a new instance of updateRepository
func NewUpdateRepository(db *gorm.DB) UpdateRepository {
	return &updateRepository{
		db: db,
	}
}

// Insert writes one row and returns it with the generated id.
func (r *updateRepository) Insert(mensagem string, timestamp int64) (*domain.Update, error) {
	update := &domain.Update{
		Mensagem:  mensagem,
		Timestamp: timestamp,
	}
	if err := r.db.Create(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

// Since returns every update strictly newer than the given timestamp,
// ascending. A row with timestamp == the bound is excluded.
func (r *updateRepository) Since(timestamp int64) ([]domain.Update, error) {
	var updates []domain.Update
	err := r.db.
		Where("timestamp > ?", timestamp).
		Order("timestamp ASC").
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}

// Notify publishes the inserted row on the updates channel. The row is already
// committed when this runs; a failed publish leaves polling as the fallback.
func (r *updateRepository) Notify(update *domain.Update) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return r.db.Exec("SELECT pg_notify(?, ?)", Channel, string(payload)).Error
}
