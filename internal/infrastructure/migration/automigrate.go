package migration

import (
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RegistrationModel{},
		&models.DedupeKeyModel{},
		&models.CooldownRecordModel{},
		&models.UnitModel{},
		&models.ParkingPolicyModel{},
		&models.AuditLogModel{},
	}
}
