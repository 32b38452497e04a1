// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationStatusSent      = "sent"
	NotificationStatusFailed    = "failed"
	NotificationStatusSimulated = "simulated"
)

// NotificationLog is one audit row per send attempt. Rows are append-only:
// the scheduler creates them and nothing updates or deletes them.
type NotificationLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ReminderID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`

	Recipient    string `gorm:"not null"`
	Subject      string `gorm:"type:text"`
	Body         string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed, simulated
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
