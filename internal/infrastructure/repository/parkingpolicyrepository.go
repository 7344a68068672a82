package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/mappers"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
)

type ParkingPolicyRepository struct {
	db       *gorm.DB
	mapper   mappers.ParkingPolicyMapper
	fallback parking.Policy
}

// NewParkingPolicyRepository creates the singleton-policy store. fallback is
// returned when no policy row has been seeded; the caller builds it from
// configuration so the parking.* overrides apply on fresh deployments.
func NewParkingPolicyRepository(gdb *gorm.DB, fallback parking.Policy) *ParkingPolicyRepository {
	return &ParkingPolicyRepository{
		db:       gdb,
		mapper:   mappers.NewParkingPolicyMapper(),
		fallback: fallback,
	}
}

// Get returns the stored policy, or the configured fallback when no policy
// row has been seeded yet.
func (r *ParkingPolicyRepository) Get(ctx context.Context) (parking.Policy, error) {
	var model models.ParkingPolicyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.fallback, nil
		}
		return parking.Policy{}, fmt.Errorf("failed to get parking policy: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *ParkingPolicyRepository) Save(ctx context.Context, policy parking.Policy) error {
	model := r.mapper.ToModel(policy, time.Now().UTC(), "")
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save parking policy: %w", err)
	}
	return nil
}
