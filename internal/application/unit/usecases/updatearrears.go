// Package usecases implements the administrative unit operations.
package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type UpdateArrearsCommand struct {
	UnitID    string
	Arrears   bool
	Amount    decimal.Decimal
	UpdatedBy string
}

type UpdateArrearsResult struct {
	UnitID  string
	Arrears bool
	Amount  decimal.Decimal
}

// UpdateArrearsUseCase sets a unit's arrears standing, the input the
// cooldown and charge tiers are derived from.
type UpdateArrearsUseCase struct {
	unitRepo unit.Repository
	logger   logger.Interface
}

func NewUpdateArrearsUseCase(unitRepo unit.Repository, log logger.Interface) *UpdateArrearsUseCase {
	return &UpdateArrearsUseCase{unitRepo: unitRepo, logger: log}
}

func (uc *UpdateArrearsUseCase) Execute(ctx context.Context, cmd UpdateArrearsCommand) (*UpdateArrearsResult, error) {
	unitID := registration.NormalizeUnitID(cmd.UnitID)
	if unitID == "" {
		return nil, errors.NewValidationError("unit id is required")
	}
	if cmd.Amount.IsNegative() {
		return nil, errors.NewValidationError("arrears amount must not be negative")
	}

	amount := cmd.Amount
	if !cmd.Arrears {
		amount = decimal.Zero
	}

	if err := uc.unitRepo.UpdateArrears(ctx, unitID, cmd.Arrears, amount, cmd.UpdatedBy); err != nil {
		uc.logger.Errorw("failed to update arrears", "error", err, "unit_id", unitID)
		return nil, errors.NewInternalError("failed to update arrears", err.Error())
	}

	uc.logger.Infow("arrears updated",
		"unit_id", unitID, "arrears", cmd.Arrears, "amount", amount.String(), "updated_by", cmd.UpdatedBy)

	return &UpdateArrearsResult{UnitID: unitID, Arrears: cmd.Arrears, Amount: amount}, nil
}
