package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/shared/constants"
)

// AnimalModel is the persistence model for tracked livestock.
type AnimalModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"uniqueIndex;not null;size:50"`
	UserID     uint   `gorm:"not null;index:idx_animal_user"`
	Name       string `gorm:"not null;size:100"`
	AnimalType string `gorm:"not null;size:20"`
	QRCode     string `gorm:"uniqueIndex;not null;size:191"`
	AreaID     *uint  `gorm:"index:idx_animal_area"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AnimalModel) TableName() string {
	return constants.TableAnimals
}
