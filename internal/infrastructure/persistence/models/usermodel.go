package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/shared/constants"
)

// UserModel is the persistence model for accounts.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	UUID         string `gorm:"uniqueIndex;not null;size:36"`
	Username     string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:191"`
	Phone        string `gorm:"size:30"`
	Address      string `gorm:"size:500"`
	PasswordHash string `gorm:"not null;size:191"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
