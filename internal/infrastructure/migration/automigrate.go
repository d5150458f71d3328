package migration

import (
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SubscriptionModel{},
		&models.AreaModel{},
		&models.AnimalModel{},
	}
}
