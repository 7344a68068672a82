package models

import "time"

type RegistrationModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	HostUnit    string `gorm:"size:32;not null;index"`
	HostName    string `gorm:"size:100"`
	HostPhone   string `gorm:"size:32"`
	Category    string `gorm:"size:50"`
	SubCategory string `gorm:"size:50"`
	CompanyName string `gorm:"size:100"`
	VisitorName string `gorm:"size:100"`
	VisitorPhone string `gorm:"size:32"`
	VehicleNo   string `gorm:"size:20"`
	StayOver    bool   `gorm:"not null;default:false"`
	ETA         time.Time `gorm:"not null"`
	// ETADateKey is the arrival day in the business timezone. The composite
	// index backs the per-day lot conflict query.
	ETADateKey string     `gorm:"size:10;not null;index;index:idx_lot_date,priority:1"`
	ETD        *time.Time
	Status     string     `gorm:"size:20;not null;index"`
	ParkingLot string     `gorm:"size:16;index:idx_lot_date,priority:2"`
	AssignedBy string     `gorm:"size:100"`
	AssignedAt *time.Time
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RegistrationModel) TableName() string {
	return "registrations"
}

type DedupeKeyModel struct {
	Fingerprint    string    `gorm:"primaryKey;size:191"`
	RegistrationID string    `gorm:"size:32;not null"`
	HostUnit       string    `gorm:"size:32;not null"`
	VisitorPhone   string    `gorm:"size:32"`
	VisitorName    string    `gorm:"size:100"`
	ETADateKey     string    `gorm:"size:10;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (DedupeKeyModel) TableName() string {
	return "dedupe_keys"
}

type CooldownRecordModel struct {
	UnitID    string    `gorm:"primaryKey;size:32"`
	Until     time.Time `gorm:"not null;index"`
	Reason    string    `gorm:"size:32;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CooldownRecordModel) TableName() string {
	return "cooldown_records"
}
