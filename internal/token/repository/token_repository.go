package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notifyhub-backend/internal/token/domain"
)

// ErrAlreadyRegistered is returned when the token row already exists. Callers
// treat it as a success outcome, not a failure.
var ErrAlreadyRegistered = errors.New("token already registered")

// TokenRepository defines the interface for device token operations
type TokenRepository interface {
	Register(token string) (*domain.DeviceToken, error)
	All() ([]string, error)
}

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Register inserts a device token, ignoring duplicates (atomic
// INSERT ... ON CONFLICT (token) DO NOTHING).
func (r *tokenRepository) Register(token string) (*domain.DeviceToken, error) {
	record := &domain.DeviceToken{
		Token:     token,
		CreatedAt: time.Now(),
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyRegistered
	}
	return record, nil
}

// All returns every registered token string.
func (r *tokenRepository) All() ([]string, error) {
	var tokens []string
	if err := r.db.Model(&domain.DeviceToken{}).Pluck("token", &tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
