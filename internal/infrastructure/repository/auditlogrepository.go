package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/persistence/models"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/id"
)

// AuditLog is a recorded operator action retrieved for display.
type AuditLog struct {
	ID        string
	Actor     string
	RowID     string
	Action    string
	Details   map[string]any
	CreatedAt time.Time
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(gdb *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: gdb}
}

func (r *AuditLogRepository) Create(ctx context.Context, actor, rowID, action string, details map[string]any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	logID, err := id.GenerateWithPrefix(id.PrefixAuditLog, id.DefaultLength)
	if err != nil {
		return fmt.Errorf("failed to generate audit log id: %w", err)
	}

	model := &models.AuditLogModel{
		ID:        logID,
		Actor:     actor,
		RowID:     rowID,
		Action:    action,
		Details:   datatypes.JSON(payload),
		CreatedAt: time.Now().UTC(),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) ListByRowID(ctx context.Context, rowID string, limit int) ([]*AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []models.AuditLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("row_id = ?", rowID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	logs := make([]*AuditLog, 0, len(rows))
	for i := range rows {
		var details map[string]any
		if len(rows[i].Details) > 0 {
			if err := json.Unmarshal(rows[i].Details, &details); err != nil {
				return nil, fmt.Errorf("failed to decode audit details: %w", err)
			}
		}
		logs = append(logs, &AuditLog{
			ID:        rows[i].ID,
			Actor:     rows[i].Actor,
			RowID:     rows[i].RowID,
			Action:    rows[i].Action,
			Details:   details,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return logs, nil
}
