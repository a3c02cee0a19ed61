package domain

import "time"

// NotificationLog is the append-only audit trail of attempted pushes. Rows are
// written after the gateway call and never block or fail it.
type NotificationLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Data      string    `json:"data" gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time `json:"created_at"`
}

func (NotificationLog) TableName() string {
	return "notifications_log"
}
