package repository

import (
	"time"

	"gorm.io/gorm"

	"notifyhub-backend/internal/notification/domain"
)

// LogRepository defines the interface for the notification audit trail
type LogRepository interface {
	Append(title, body, data string) error
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new instance of logRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{
		db: db,
	}
}

func (r *logRepository) Append(title, body, data string) error {
	return r.db.Create(&domain.NotificationLog{
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}).Error
}
