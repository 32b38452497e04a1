package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Memory struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	PersonID *uuid.UUID `gorm:"type:uuid;index"`

	Title      string `gorm:"not null"`
	Content    string `gorm:"type:text"`
	HappenedOn string `gorm:"type:varchar(10)"` // YYYY-MM-DD, optional

	gorm.Model
}

func (m *Memory) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
