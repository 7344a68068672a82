package usecases

import (
	"context"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type GetUnitQuery struct {
	UnitID string
}

// GetUnitUseCase looks up a unit's recorded standing.
type GetUnitUseCase struct {
	unitRepo unit.Repository
	logger   logger.Interface
}

func NewGetUnitUseCase(unitRepo unit.Repository, log logger.Interface) *GetUnitUseCase {
	return &GetUnitUseCase{unitRepo: unitRepo, logger: log}
}

func (uc *GetUnitUseCase) Execute(ctx context.Context, query GetUnitQuery) (*unit.Unit, error) {
	unitID := registration.NormalizeUnitID(query.UnitID)
	if unitID == "" {
		return nil, errors.NewValidationError("unit id is required")
	}

	u, err := uc.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		uc.logger.Errorw("failed to load unit", "error", err, "unit_id", unitID)
		return nil, errors.NewInternalError("failed to load unit", err.Error())
	}
	if u == nil {
		return nil, errors.NewNotFoundError("unit not found", unitID)
	}
	return u, nil
}
