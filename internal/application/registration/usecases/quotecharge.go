package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type QuoteChargeQuery struct {
	UnitID string
	Start  time.Time
	End    time.Time
}

type QuoteChargeResult struct {
	UnitID string
	Tier   parking.Tier
	Quote  parking.ChargeQuote
}

// QuoteChargeUseCase prices a visitor parking stay for a unit from its
// current arrears standing. Quotes are read-only and advisory; nothing is
// reserved or persisted.
type QuoteChargeUseCase struct {
	unitRepo   unit.Repository
	policyRepo parking.PolicyRepository
	logger     logger.Interface
}

func NewQuoteChargeUseCase(
	unitRepo unit.Repository,
	policyRepo parking.PolicyRepository,
	log logger.Interface,
) *QuoteChargeUseCase {
	return &QuoteChargeUseCase{
		unitRepo:   unitRepo,
		policyRepo: policyRepo,
		logger:     log,
	}
}

func (uc *QuoteChargeUseCase) Execute(ctx context.Context, query QuoteChargeQuery) (*QuoteChargeResult, error) {
	if query.UnitID == "" {
		return nil, errors.NewValidationError("unit id is required")
	}
	if query.Start.IsZero() {
		return nil, errors.NewValidationError("start date is required")
	}
	if !query.End.IsZero() && query.End.Before(query.Start) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	policy, err := uc.policyRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load parking policy", "error", err)
		return nil, errors.NewInternalError("failed to load parking policy", err.Error())
	}
	policy = policy.Sanitized()

	// An unknown unit quotes as a zero-arrears unit: amount 0 classifies
	// into the lowest tier, which is never chargeable.
	amount := decimal.Zero
	u, err := uc.unitRepo.GetByID(ctx, query.UnitID)
	if err != nil {
		uc.logger.Errorw("failed to load unit", "error", err, "unit_id", query.UnitID)
		return nil, errors.NewInternalError("failed to load unit", err.Error())
	}
	if u != nil {
		amount = u.ArrearsAmount
	}

	tier := parking.TierNone
	if policy.Enabled {
		tier = policy.ClassifyArrears(amount)
	}

	return &QuoteChargeResult{
		UnitID: query.UnitID,
		Tier:   tier,
		Quote:  policy.ComputeCharge(tier, query.Start, query.End),
	}, nil
}
