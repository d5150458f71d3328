package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions. It is
// the anti-corruption layer between the domain aggregate and the table.
type SubscriptionModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"uniqueIndex;not null;size:50;comment:public ID: sub_xxx"`
	UserID            uint   `gorm:"uniqueIndex;not null"`
	AnimalCounts      datatypes.JSON
	MonthlyPrice      int64     `gorm:"not null"`
	Status            string    `gorm:"not null;size:20;index:idx_status"`
	TrialStart        time.Time `gorm:"not null"`
	TrialEnd          time.Time `gorm:"not null"`
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time `gorm:"index:idx_subscription_end"`
	SessionToken      *string    `gorm:"index:idx_session_token;size:191"`
	GatewayRef        *string    `gorm:"size:191"`
	Version           int        `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
