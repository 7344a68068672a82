package usecases

import (
	"context"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/id"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

// FallbackSubmitUseCase is the degraded write path: a plain insert with no
// dedup key, no cooldown evaluation and no transaction. The gateway invokes
// it only after the coordinator fails with an internal error, preferring a
// possible duplicate over a lost registration.
type FallbackSubmitUseCase struct {
	regRepo registration.Repository
	logger  logger.Interface
}

func NewFallbackSubmitUseCase(regRepo registration.Repository, log logger.Interface) *FallbackSubmitUseCase {
	return &FallbackSubmitUseCase{regRepo: regRepo, logger: log}
}

func (uc *FallbackSubmitUseCase) Execute(ctx context.Context, cmd SubmitRegistrationCommand) (*SubmitRegistrationResult, error) {
	reg, err := registration.NewRegistration(
		cmd.HostUnit, cmd.HostName, cmd.VisitorName, cmd.VisitorPhone, cmd.ETA, cmd.ETD,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	reg.SetVisitorDetails(cmd.HostPhone, cmd.Category, cmd.SubCategory, cmd.CompanyName, cmd.VehicleNo, cmd.StayOver)

	newID, err := id.GenerateWithPrefix(id.PrefixRegistration, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate registration id", err.Error())
	}
	if err := reg.SetID(newID); err != nil {
		return nil, errors.NewInternalError("failed to assign registration id", err.Error())
	}

	if err := uc.regRepo.Create(ctx, reg); err != nil {
		uc.logger.Errorw("fallback submit failed",
			"error", err, "host_unit", reg.HostUnit())
		return nil, errors.NewInternalError("failed to persist registration", err.Error())
	}

	uc.logger.Warnw("registration created via fallback path",
		"registration_id", reg.ID(), "host_unit", reg.HostUnit())

	return &SubmitRegistrationResult{RegistrationID: reg.ID(), Fallback: true}, nil
}
