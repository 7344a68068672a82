package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type mockRegistrationRepository struct {
	CreateFunc         func(ctx context.Context, reg *registration.Registration) error
	GetByIDFunc        func(ctx context.Context, id string) (*registration.Registration, error)
	UpdateFunc         func(ctx context.Context, reg *registration.Registration) error
	ListByDateKeyFunc  func(ctx context.Context, dateKey string) ([]*registration.Registration, error)
	HasLotConflictFunc func(ctx context.Context, dateKey, lotID, excludeID string) (bool, error)
}

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reg)
	}
	return nil
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("registration not found", id)
}

func (m *mockRegistrationRepository) Update(ctx context.Context, reg *registration.Registration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, reg)
	}
	return nil
}

func (m *mockRegistrationRepository) ListByDateKey(ctx context.Context, dateKey string) ([]*registration.Registration, error) {
	if m.ListByDateKeyFunc != nil {
		return m.ListByDateKeyFunc(ctx, dateKey)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) HasLotConflict(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
	if m.HasLotConflictFunc != nil {
		return m.HasLotConflictFunc(ctx, dateKey, lotID, excludeID)
	}
	return false, nil
}

type mockDedupeKeyRepository struct {
	GetFunc             func(ctx context.Context, fingerprint string) (*registration.DedupeKey, error)
	UpsertFunc          func(ctx context.Context, key *registration.DedupeKey) error
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockDedupeKeyRepository) Get(ctx context.Context, fingerprint string) (*registration.DedupeKey, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, fingerprint)
	}
	return nil, nil
}

func (m *mockDedupeKeyRepository) Upsert(ctx context.Context, key *registration.DedupeKey) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, key)
	}
	return nil
}

func (m *mockDedupeKeyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockCooldownRepository struct {
	GetFunc    func(ctx context.Context, unitID string) (*registration.CooldownRecord, error)
	UpsertFunc func(ctx context.Context, record *registration.CooldownRecord) error
}

func (m *mockCooldownRepository) Get(ctx context.Context, unitID string) (*registration.CooldownRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, unitID)
	}
	return nil, nil
}

func (m *mockCooldownRepository) Upsert(ctx context.Context, record *registration.CooldownRecord) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	return nil
}

type mockUnitRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*unit.Unit, error)
	SaveFunc          func(ctx context.Context, u *unit.Unit) error
	UpdateArrearsFunc func(ctx context.Context, id string, arrears bool, amount decimal.Decimal, updatedBy string) error
}

func (m *mockUnitRepository) GetByID(ctx context.Context, id string) (*unit.Unit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUnitRepository) Save(ctx context.Context, u *unit.Unit) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) UpdateArrears(ctx context.Context, id string, arrears bool, amount decimal.Decimal, updatedBy string) error {
	if m.UpdateArrearsFunc != nil {
		return m.UpdateArrearsFunc(ctx, id, arrears, amount, updatedBy)
	}
	return nil
}

type mockPolicyRepository struct {
	GetFunc  func(ctx context.Context) (parking.Policy, error)
	SaveFunc func(ctx context.Context, policy parking.Policy) error
}

func (m *mockPolicyRepository) Get(ctx context.Context) (parking.Policy, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return parking.DefaultPolicy(), nil
}

func (m *mockPolicyRepository) Save(ctx context.Context, policy parking.Policy) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, policy)
	}
	return nil
}

// mockTransactionManager runs the body inline with no store transaction.
type mockTransactionManager struct {
	RunWithRetryFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunWithRetryFunc != nil {
		return m.RunWithRetryFunc(ctx, fn)
	}
	return fn(ctx)
}

// retryingTransactionManager re-runs the body on retryable store conflicts
// the way TransactionManager.RunWithRetry does, for tests that exercise the
// deadlock-then-retry path of contended transactions.
func retryingTransactionManager(maxAttempts int) *mockTransactionManager {
	return &mockTransactionManager{
		RunWithRetryFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			var err error
			for attempt := 1; attempt <= maxAttempts; attempt++ {
				err = fn(ctx)
				if err == nil || !db.IsRetryableConflict(err) {
					return err
				}
			}
			return err
		},
	}
}

type mockSubmitGuard struct {
	SeenRecentlyFunc  func(ctx context.Context, fingerprint string) (bool, error)
	MarkSubmittedFunc func(ctx context.Context, fingerprint string, ttl time.Duration) error
}

func (m *mockSubmitGuard) SeenRecently(ctx context.Context, fingerprint string) (bool, error) {
	if m.SeenRecentlyFunc != nil {
		return m.SeenRecentlyFunc(ctx, fingerprint)
	}
	return false, nil
}

func (m *mockSubmitGuard) MarkSubmitted(ctx context.Context, fingerprint string, ttl time.Duration) error {
	if m.MarkSubmittedFunc != nil {
		return m.MarkSubmittedFunc(ctx, fingerprint, ttl)
	}
	return nil
}

type mockAuditRecorder struct {
	Entries []AuditEntry
}

func (m *mockAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	m.Entries = append(m.Entries, entry)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
