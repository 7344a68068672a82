package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
)

func unitWithArrears(amount int64) *mockUnitRepository {
	return &mockUnitRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*unit.Unit, error) {
			return &unit.Unit{ID: id, Arrears: amount > 0, ArrearsAmount: decimal.NewFromInt(amount)}, nil
		},
	}
}

func TestQuoteCharge_HighArrearsThreeDays(t *testing.T) {
	uc := NewQuoteChargeUseCase(unitWithArrears(500), &mockPolicyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "A-12-3",
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, parking.Tier3, result.Tier)
	assert.True(t, result.Quote.Total.Equal(decimal.NewFromInt(45)), "total = %s", result.Quote.Total)
	require.Len(t, result.Quote.Breakdown, 3)
	for _, line := range result.Quote.Breakdown {
		assert.Equal(t, "RM 15.00", line.Label)
		assert.False(t, line.Free)
	}
}

func TestQuoteCharge_MidArrearsFirstDayFree(t *testing.T) {
	uc := NewQuoteChargeUseCase(unitWithArrears(250), &mockPolicyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "A-12-3",
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, parking.Tier2, result.Tier)
	assert.True(t, result.Quote.Total.Equal(decimal.NewFromInt(10)), "total = %s", result.Quote.Total)
	require.Len(t, result.Quote.Breakdown, 3)
	assert.Equal(t, parking.FreeDayLabel, result.Quote.Breakdown[0].Label)
	assert.Equal(t, "RM 5.00", result.Quote.Breakdown[1].Label)
	assert.Equal(t, "RM 5.00", result.Quote.Breakdown[2].Label)
}

func TestQuoteCharge_NoArrearsIsFree(t *testing.T) {
	uc := NewQuoteChargeUseCase(unitWithArrears(0), &mockPolicyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "A-12-3",
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, parking.Tier1, result.Tier)
	assert.True(t, result.Quote.Total.IsZero())
	assert.Empty(t, result.Quote.Breakdown)
}

func TestQuoteCharge_UnknownUnitQuotesAsZeroArrears(t *testing.T) {
	uc := NewQuoteChargeUseCase(&mockUnitRepository{}, &mockPolicyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "Z-99-9",
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, parking.Tier1, result.Tier)
	assert.True(t, result.Quote.Total.IsZero())
}

func TestQuoteCharge_ZeroEndDefaultsToSingleDay(t *testing.T) {
	uc := NewQuoteChargeUseCase(unitWithArrears(250), &mockPolicyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "A-12-3",
		Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Single tier2 day is covered by the free-day allowance.
	assert.True(t, result.Quote.Total.IsZero())
	require.Len(t, result.Quote.Breakdown, 1)
	assert.True(t, result.Quote.Breakdown[0].Free)
}

func TestQuoteCharge_Validation(t *testing.T) {
	uc := NewQuoteChargeUseCase(&mockUnitRepository{}, &mockPolicyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), QuoteChargeQuery{Start: time.Now()})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), QuoteChargeQuery{UnitID: "A-12-3"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), QuoteChargeQuery{
		UnitID: "A-12-3",
		Start:  time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
