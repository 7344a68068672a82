package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UnitModel struct {
	ID            string          `gorm:"primaryKey;size:32"`
	OwnerName     string          `gorm:"size:100"`
	OwnerPhone    string          `gorm:"size:32"`
	Arrears       bool            `gorm:"not null;default:false"`
	ArrearsAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt     time.Time       `gorm:"not null"`
	UpdatedBy     string          `gorm:"size:100"`
}

func (UnitModel) TableName() string {
	return "units"
}

// ParkingPolicyModel is a singleton row; the repository reads and writes
// only ID 1 and falls back to compiled defaults when the row is absent.
type ParkingPolicyModel struct {
	ID uint `gorm:"primaryKey"`
	// No default tag: gorm omits zero-valued fields that carry one from the
	// INSERT, which would make Enabled=false unsaveable through the upsert.
	Enabled                 bool            `gorm:"not null"`
	LowArrearsBound         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HighArrearsThreshold    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ArrearsCooldownDays     int             `gorm:"not null;default:0"`
	HighArrearsCooldownDays int             `gorm:"not null;default:0"`
	NoArrearsCooldownDays   int             `gorm:"not null;default:0"`
	Tier1FreeDays           int             `gorm:"not null;default:0"`
	Tier2FreeDays           int             `gorm:"not null;default:0"`
	Tier3FreeDays           int             `gorm:"not null;default:0"`
	Tier2DailyRate          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Tier3DailyRate          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt               time.Time       `gorm:"not null"`
	UpdatedBy               string          `gorm:"size:100"`
}

func (ParkingPolicyModel) TableName() string {
	return "parking_policies"
}
