package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
)

type DedupeKeyRepository struct {
	db *gorm.DB
}

func NewDedupeKeyRepository(gdb *gorm.DB) *DedupeKeyRepository {
	return &DedupeKeyRepository{db: gdb}
}

// Get reads the key with a locking read. On an absent fingerprint the lock
// covers the index gap, so two transactions that both read "no key" and then
// both insert deadlock instead of both committing; the retried loser re-reads
// and sees the winner's fresh key.
func (r *DedupeKeyRepository) Get(ctx context.Context, fingerprint string) (*registration.DedupeKey, error) {
	var model models.DedupeKeyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := db.ForUpdate(tx).Where("fingerprint = ?", fingerprint).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dedupe key: %w", err)
	}
	return &registration.DedupeKey{
		Fingerprint:    model.Fingerprint,
		RegistrationID: model.RegistrationID,
		HostUnit:       model.HostUnit,
		VisitorPhone:   model.VisitorPhone,
		VisitorName:    model.VisitorName,
		ETADateKey:     model.ETADateKey,
		CreatedAt:      model.CreatedAt,
	}, nil
}

// Upsert overwrites a stale key in place; two racing submissions serialize on
// the primary-key row and the loser sees the winner's fresh key on retry.
func (r *DedupeKeyRepository) Upsert(ctx context.Context, key *registration.DedupeKey) error {
	model := &models.DedupeKeyModel{
		Fingerprint:    key.Fingerprint,
		RegistrationID: key.RegistrationID,
		HostUnit:       key.HostUnit,
		VisitorPhone:   key.VisitorPhone,
		VisitorName:    key.VisitorName,
		ETADateKey:     key.ETADateKey,
		CreatedAt:      key.CreatedAt,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fingerprint"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert dedupe key: %w", err)
	}
	return nil
}

// DeleteOlderThan prunes keys past the dedup window; invoked by the cleanup
// CLI, never by the request path.
func (r *DedupeKeyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("created_at < ?", cutoff).Delete(&models.DedupeKeyModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune dedupe keys: %w", result.Error)
	}
	return result.RowsAffected, nil
}
