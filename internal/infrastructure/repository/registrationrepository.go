// Package repository provides the GORM-backed persistence implementations.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/mappers"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

type RegistrationRepository struct {
	db     *gorm.DB
	mapper mappers.RegistrationMapper
}

func NewRegistrationRepository(gdb *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:     gdb,
		mapper: mappers.NewRegistrationMapper(),
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	model := r.mapper.ToModel(reg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

// GetByID reads the registration with a locking read. Callers read a
// registration in order to mutate it inside a transaction, so the row is
// locked up front; it never returns (nil, nil).
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	var model models.RegistrationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := db.ForUpdate(tx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("registration not found", id)
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *RegistrationRepository) Update(ctx context.Context, reg *registration.Registration) error {
	model := r.mapper.ToModel(reg)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RegistrationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update registration: %w", result.Error)
	}
	return nil
}

func (r *RegistrationRepository) ListByDateKey(ctx context.Context, dateKey string) ([]*registration.Registration, error) {
	var rows []models.RegistrationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("eta_date_key = ?", dateKey).
		Order("eta ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	regs := make([]*registration.Registration, 0, len(rows))
	for i := range rows {
		reg, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map registration %s: %w", rows[i].ID, err)
		}
		regs = append(regs, reg)
	}
	return regs, nil
}

// HasLotConflict runs the per-day lot conflict query inside the caller's
// transaction. The read locks the scanned (eta_date_key, parking_lot) index
// range: two transactions racing for a free lot both gap-lock the range,
// their writes then deadlock, and the retried loser sees the winner's row.
// Without the lock both snapshot reads see "free" and the lot double-books.
func (r *RegistrationRepository) HasLotConflict(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := db.ForUpdate(tx).
		Model(&models.RegistrationModel{}).
		Where("eta_date_key = ? AND parking_lot = ? AND id <> ?", dateKey, lotID, excludeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check lot conflict: %w", err)
	}
	return count > 0, nil
}
