package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/shared/constants"
)

// AreaModel is the persistence model for grazing areas.
type AreaModel struct {
	ID        uint    `gorm:"primarykey"`
	SID       string  `gorm:"uniqueIndex;not null;size:50"`
	UserID    uint    `gorm:"not null;index:idx_area_user"`
	Name      string  `gorm:"not null;size:100"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AreaModel) TableName() string {
	return constants.TableAreas
}
