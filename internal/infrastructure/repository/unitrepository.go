package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/mappers"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
)

type UnitRepository struct {
	db     *gorm.DB
	mapper mappers.UnitMapper
}

func NewUnitRepository(gdb *gorm.DB) *UnitRepository {
	return &UnitRepository{
		db:     gdb,
		mapper: mappers.NewUnitMapper(),
	}
}

// GetByID returns (nil, nil) for an unknown unit: units are provisioned by
// the building administration out of band and an unprovisioned unit simply
// has no arrears standing.
func (r *UnitRepository) GetByID(ctx context.Context, id string) (*unit.Unit, error) {
	var model models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *UnitRepository) Save(ctx context.Context, u *unit.Unit) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save unit: %w", err)
	}
	return nil
}

// UpdateArrears upserts the arrears standing so an admin can flag a unit the
// engine has never seen before.
func (r *UnitRepository) UpdateArrears(ctx context.Context, id string, arrears bool, amount decimal.Decimal, updatedBy string) error {
	model := &models.UnitModel{
		ID:            id,
		Arrears:       arrears,
		ArrearsAmount: amount,
		UpdatedAt:     time.Now().UTC(),
		UpdatedBy:     updatedBy,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"arrears", "arrears_amount", "updated_at", "updated_by"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to update arrears: %w", err)
	}
	return nil
}
