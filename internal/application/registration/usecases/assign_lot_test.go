package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

func existingRegistration(t *testing.T, id, lot string) *registration.Registration {
	t.Helper()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var assignedAt *time.Time
	assignedBy := ""
	if lot != "" {
		assignedAt = &now
		assignedBy = "admin-1"
	}
	reg, err := registration.ReconstructRegistration(
		id, "A-12-3", "Ahmad", "+60123334444",
		"visitor", "", "",
		"Siti", "+60121112222", "WXY 1234", false,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), nil,
		registration.StatusPending,
		lot, assignedBy, assignedAt,
		now, now,
	)
	require.NoError(t, err)
	return reg
}

func TestAssignLot_Success(t *testing.T) {
	reg := existingRegistration(t, "reg_abc123", "")

	var updated *registration.Registration
	var conflictQuery struct {
		dateKey, lotID, excludeID string
	}
	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			return reg, nil
		},
		HasLotConflictFunc: func(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
			conflictQuery.dateKey = dateKey
			conflictQuery.lotID = lotID
			conflictQuery.excludeID = excludeID
			return false, nil
		},
		UpdateFunc: func(ctx context.Context, r *registration.Registration) error {
			updated = r
			return nil
		},
	}
	audit := &mockAuditRecorder{}

	uc := NewAssignLotUseCase(regRepo, &mockTransactionManager{}, audit, newTestLogger())

	result, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_abc123",
		LotID:          "V07",
		AssignedBy:     "admin-2",
	})
	require.NoError(t, err)

	assert.Equal(t, "reg_abc123", result.RegistrationID)
	assert.Equal(t, "V07", result.LotID)
	assert.Equal(t, "2025-06-01", result.DateKey)
	assert.False(t, result.AssignedAt.IsZero())

	assert.Equal(t, "2025-06-01", conflictQuery.dateKey)
	assert.Equal(t, "V07", conflictQuery.lotID)
	assert.Equal(t, "reg_abc123", conflictQuery.excludeID)

	require.NotNil(t, updated)
	assert.Equal(t, "V07", updated.ParkingLot())
	assert.Equal(t, "admin-2", updated.AssignedBy())

	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "assign_parking_lot", audit.Entries[0].Action)
	assert.Equal(t, "admin-2", audit.Entries[0].Actor)
}

func TestAssignLot_LotTaken(t *testing.T) {
	reg := existingRegistration(t, "reg_abc123", "")

	updateCalled := false
	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			return reg, nil
		},
		HasLotConflictFunc: func(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
			return true, nil
		},
		UpdateFunc: func(ctx context.Context, r *registration.Registration) error {
			updateCalled = true
			return nil
		},
	}

	uc := NewAssignLotUseCase(regRepo, &mockTransactionManager{}, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_abc123",
		LotID:          "V07",
		AssignedBy:     "admin-2",
	})
	require.Error(t, err)
	assert.True(t, errors.IsResourceConflictError(err))
	assert.False(t, updateCalled)
}

func TestAssignLot_ConcurrentAssignLosesOnRetry(t *testing.T) {
	// Two operators race for the same free lot. The loser's locking conflict
	// check makes its write deadlock at the store; the retried transaction
	// re-reads and sees the lot taken, so exactly one assignment commits.
	attempts := 0
	committed := 0

	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			// A fresh read each attempt, as inside a real transaction.
			return existingRegistration(t, "reg_loser", ""), nil
		},
		HasLotConflictFunc: func(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
			attempts++
			return attempts > 1, nil
		},
		UpdateFunc: func(ctx context.Context, r *registration.Registration) error {
			if attempts == 1 {
				return stderrors.New("Error 1213: Deadlock found when trying to get lock")
			}
			committed++
			return nil
		},
	}

	uc := NewAssignLotUseCase(regRepo, retryingTransactionManager(3), nil, newTestLogger())

	_, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_loser",
		LotID:          "V07",
		AssignedBy:     "admin-2",
	})
	require.Error(t, err)
	assert.True(t, errors.IsResourceConflictError(err))
	assert.Equal(t, 2, attempts)
	assert.Zero(t, committed, "losing assignment must not commit")
}

func TestAssignLot_SameLotIsIdempotent(t *testing.T) {
	reg := existingRegistration(t, "reg_abc123", "V07")

	conflictChecked := false
	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			return reg, nil
		},
		HasLotConflictFunc: func(ctx context.Context, dateKey, lotID, excludeID string) (bool, error) {
			conflictChecked = true
			return true, nil
		},
	}

	uc := NewAssignLotUseCase(regRepo, &mockTransactionManager{}, nil, newTestLogger())

	result, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_abc123",
		LotID:          "V07",
		AssignedBy:     "admin-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "V07", result.LotID)
	assert.False(t, conflictChecked, "re-assigning the held lot must not run the conflict query")
}

func TestAssignLot_NotFound(t *testing.T) {
	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			return nil, errors.NewNotFoundError("registration not found", id)
		},
	}

	uc := NewAssignLotUseCase(regRepo, &mockTransactionManager{}, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_missing",
		LotID:          "V07",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignLot_Validation(t *testing.T) {
	uc := NewAssignLotUseCase(&mockRegistrationRepository{}, &mockTransactionManager{}, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), AssignLotCommand{LotID: "V07"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AssignLotCommand{RegistrationID: "reg_abc123"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignLot_StoreFailureBecomesInternal(t *testing.T) {
	reg := existingRegistration(t, "reg_abc123", "")
	regRepo := &mockRegistrationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*registration.Registration, error) {
			return reg, nil
		},
		UpdateFunc: func(ctx context.Context, r *registration.Registration) error {
			return stderrors.New("connection reset")
		},
	}

	uc := NewAssignLotUseCase(regRepo, &mockTransactionManager{}, nil, newTestLogger())

	_, err := uc.Execute(context.Background(), AssignLotCommand{
		RegistrationID: "reg_abc123",
		LotID:          "V07",
	})
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
