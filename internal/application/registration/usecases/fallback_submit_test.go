package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

func TestFallbackSubmit_Success(t *testing.T) {
	var created *registration.Registration
	regRepo := &mockRegistrationRepository{
		CreateFunc: func(ctx context.Context, reg *registration.Registration) error {
			created = reg
			return nil
		},
	}

	uc := NewFallbackSubmitUseCase(regRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), submitCommand())
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	assert.False(t, result.CooldownApplied)
	require.NotNil(t, created)
	assert.Equal(t, result.RegistrationID, created.ID())
}

func TestFallbackSubmit_ValidationStillApplies(t *testing.T) {
	uc := NewFallbackSubmitUseCase(&mockRegistrationRepository{}, newTestLogger())

	cmd := submitCommand()
	cmd.HostUnit = ""

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFallbackSubmit_StoreFailure(t *testing.T) {
	regRepo := &mockRegistrationRepository{
		CreateFunc: func(ctx context.Context, reg *registration.Registration) error {
			return stderrors.New("connection reset")
		},
	}

	uc := NewFallbackSubmitUseCase(regRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), submitCommand())
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
