// Package unit models the resident units (resource owners) whose arrears
// state drives the parking cooldown and charge policy.
package unit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Unit is a resident unit in the complex. The engine reads arrears state;
// administrators maintain the rest through the dashboard import flow.
type Unit struct {
	ID            string // normalized form, e.g. "A-12-03"
	OwnerName     string
	OwnerPhone    string
	Arrears       bool
	ArrearsAmount decimal.Decimal
	UpdatedAt     time.Time
	UpdatedBy     string
}

// Repository persists units. GetByID returns (nil, nil) when the unit is
// unknown: unknown units are still allowed to register visitors and are
// treated as having no arrears.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Unit, error)
	Save(ctx context.Context, u *Unit) error
	UpdateArrears(ctx context.Context, id string, arrears bool, amount decimal.Decimal, updatedBy string) error
}
