package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

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

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
