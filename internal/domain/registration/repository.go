package registration

import (
	"context"
	"time"
)

// Repository persists registrations. Implementations must honor an ambient
// transaction carried in ctx so the coordinator can compose reads and writes
// into one atomic unit.
type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	// GetByID returns a not-found error for an unknown id; it never returns
	// (nil, nil). Inside a transaction the read locks the row.
	GetByID(ctx context.Context, id string) (*Registration, error)
	Update(ctx context.Context, reg *Registration) error
	ListByDateKey(ctx context.Context, dateKey string) ([]*Registration, error)
	// HasLotConflict reports whether any other registration already holds
	// lotID on the given date. Inside a transaction the check is a locking
	// read, so a concurrent allocation of the same lot conflicts at the
	// store instead of both committing.
	HasLotConflict(ctx context.Context, dateKey, lotID, excludeID string) (bool, error)
}

// DedupeKeyRepository persists fingerprint dedup records. Get returns
// (nil, nil) when no key exists; Upsert overwrites a stale key in place.
type DedupeKeyRepository interface {
	Get(ctx context.Context, fingerprint string) (*DedupeKey, error)
	Upsert(ctx context.Context, key *DedupeKey) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CooldownRepository persists per-unit cooldown records. Get returns
// (nil, nil) when the unit has no record.
type CooldownRepository interface {
	Get(ctx context.Context, unitID string) (*CooldownRecord, error)
	Upsert(ctx context.Context, record *CooldownRecord) error
}
