package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Person struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"not null"`
	Relationship string
	Birthday     string `gorm:"type:varchar(10)"` // YYYY-MM-DD, empty if unknown
	Notes        string `gorm:"type:text"`

	Memories  []Memory   `gorm:"foreignKey:PersonID"`
	Reminders []Reminder `gorm:"foreignKey:PersonID"`

	gorm.Model
}

func (p *Person) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
