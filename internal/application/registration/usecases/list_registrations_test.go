package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

func TestListRegistrations_ByDate(t *testing.T) {
	reg := existingRegistration(t, "reg_abc123", "V07")

	var queried string
	regRepo := &mockRegistrationRepository{
		ListByDateKeyFunc: func(ctx context.Context, dateKey string) ([]*registration.Registration, error) {
			queried = dateKey
			return []*registration.Registration{reg}, nil
		},
	}

	uc := NewListRegistrationsUseCase(regRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListRegistrationsQuery{DateKey: "2025-06-01"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", queried)
	assert.Equal(t, "2025-06-01", result.DateKey)
	require.Len(t, result.Registrations, 1)
	assert.Equal(t, "reg_abc123", result.Registrations[0].ID())
}

func TestListRegistrations_DefaultsToToday(t *testing.T) {
	var queried string
	regRepo := &mockRegistrationRepository{
		ListByDateKeyFunc: func(ctx context.Context, dateKey string) ([]*registration.Registration, error) {
			queried = dateKey
			return nil, nil
		},
	}

	uc := NewListRegistrationsUseCase(regRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListRegistrationsQuery{})
	require.NoError(t, err)
	assert.Equal(t, biztime.DateKey(time.Now().UTC()), queried)
	assert.Empty(t, result.Registrations)
}

func TestListRegistrations_InvalidDate(t *testing.T) {
	uc := NewListRegistrationsUseCase(&mockRegistrationRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListRegistrationsQuery{DateKey: "01/06/2025"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListRegistrations_StoreFailure(t *testing.T) {
	regRepo := &mockRegistrationRepository{
		ListByDateKeyFunc: func(ctx context.Context, dateKey string) ([]*registration.Registration, error) {
			return nil, stderrors.New("connection reset")
		},
	}

	uc := NewListRegistrationsUseCase(regRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListRegistrationsQuery{DateKey: "2025-06-01"})
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
