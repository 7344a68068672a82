package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
)

type CooldownRepository struct {
	db *gorm.DB
}

func NewCooldownRepository(gdb *gorm.DB) *CooldownRepository {
	return &CooldownRepository{db: gdb}
}

func (r *CooldownRepository) Get(ctx context.Context, unitID string) (*registration.CooldownRecord, error) {
	var model models.CooldownRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("unit_id = ?", unitID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cooldown record: %w", err)
	}
	return &registration.CooldownRecord{
		UnitID:    model.UnitID,
		Until:     model.Until,
		Reason:    model.Reason,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (r *CooldownRepository) Upsert(ctx context.Context, record *registration.CooldownRecord) error {
	model := &models.CooldownRecordModel{
		UnitID:    record.UnitID,
		Until:     record.Until,
		Reason:    record.Reason,
		UpdatedAt: record.UpdatedAt,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "unit_id"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert cooldown record: %w", err)
	}
	return nil
}
