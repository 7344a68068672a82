package usecases

import (
	"context"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type ListRegistrationsQuery struct {
	// DateKey is a business-timezone calendar day in YYYY-MM-DD form.
	DateKey string
}

type ListRegistrationsResult struct {
	DateKey       string
	Registrations []*registration.Registration
}

// ListRegistrationsUseCase returns the registrations arriving on a given day,
// the read the dashboard lot grid is built from.
type ListRegistrationsUseCase struct {
	regRepo registration.Repository
	logger  logger.Interface
}

func NewListRegistrationsUseCase(regRepo registration.Repository, log logger.Interface) *ListRegistrationsUseCase {
	return &ListRegistrationsUseCase{regRepo: regRepo, logger: log}
}

func (uc *ListRegistrationsUseCase) Execute(ctx context.Context, query ListRegistrationsQuery) (*ListRegistrationsResult, error) {
	dateKey := query.DateKey
	if dateKey == "" {
		dateKey = biztime.DateKey(biztime.NowUTC())
	} else if _, err := biztime.ParseDateKey(dateKey); err != nil {
		return nil, errors.NewValidationError("invalid date", "expected YYYY-MM-DD")
	}

	regs, err := uc.regRepo.ListByDateKey(ctx, dateKey)
	if err != nil {
		uc.logger.Errorw("failed to list registrations", "error", err, "date_key", dateKey)
		return nil, errors.NewInternalError("failed to list registrations", err.Error())
	}

	return &ListRegistrationsResult{DateKey: dateKey, Registrations: regs}, nil
}
