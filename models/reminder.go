package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReminderTypeBirthday    = "birthday"
	ReminderTypeAnniversary = "anniversary"
	ReminderTypeCustom      = "custom"
)

type Reminder struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	PersonID *uuid.UUID `gorm:"type:uuid;index"`

	Type        string `gorm:"type:varchar(20);not null"` // birthday, anniversary, custom
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`

	// AnchorDate is a plain YYYY-MM-DD calendar date. It is stored and
	// compared as year/month/day components, never as an instant.
	AnchorDate string `gorm:"type:varchar(10);not null"`

	AdvanceNoticeDays int  `gorm:"default:0"` // 0 means no separate advance notice
	IsRecurring       bool `gorm:"default:false"`
	IsActive          bool `gorm:"default:true"`

	Person *Person `gorm:"foreignKey:PersonID"`

	gorm.Model
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
