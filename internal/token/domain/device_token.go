package domain

import "time"

// DeviceToken is a registered FCM device token used to address push
// notifications. Tokens are immutable once stored; re-registration is a no-op.
type DeviceToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (DeviceToken) TableName() string {
	return "fcm_tokens"
}
