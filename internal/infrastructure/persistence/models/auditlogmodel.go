package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLogModel struct {
	ID        string         `gorm:"primaryKey;size:32"`
	Actor     string         `gorm:"size:100;index"`
	RowID     string         `gorm:"size:32;index"`
	Action    string         `gorm:"size:50;not null;index"`
	Details   datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time      `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
