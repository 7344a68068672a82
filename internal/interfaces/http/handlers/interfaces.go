// Package handlers implements the HTTP gateway in front of the registration
// engine.
package handlers

import (
	"context"

	regusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/registration/usecases"
	unitusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/unit/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
)

// Use case interfaces for RegistrationHandler

type submitRegistrationUseCase interface {
	Execute(ctx context.Context, cmd regusecases.SubmitRegistrationCommand) (*regusecases.SubmitRegistrationResult, error)
}

// fallbackSubmitUseCase is the degraded-path writer used when the
// transactional coordinator reports an internal failure.
type fallbackSubmitUseCase interface {
	Execute(ctx context.Context, cmd regusecases.SubmitRegistrationCommand) (*regusecases.SubmitRegistrationResult, error)
}

type assignLotUseCase interface {
	Execute(ctx context.Context, cmd regusecases.AssignLotCommand) (*regusecases.AssignLotResult, error)
}

type listRegistrationsUseCase interface {
	Execute(ctx context.Context, query regusecases.ListRegistrationsQuery) (*regusecases.ListRegistrationsResult, error)
}

// Use case interfaces for ParkingHandler

type quoteChargeUseCase interface {
	Execute(ctx context.Context, query regusecases.QuoteChargeQuery) (*regusecases.QuoteChargeResult, error)
}

// Use case interfaces for UnitHandler

type getUnitUseCase interface {
	Execute(ctx context.Context, query unitusecases.GetUnitQuery) (*unit.Unit, error)
}

type updateArrearsUseCase interface {
	Execute(ctx context.Context, cmd unitusecases.UpdateArrearsCommand) (*unitusecases.UpdateArrearsResult, error)
}

// policyProvider supplies the current parking policy for read models.
type policyProvider interface {
	Get(ctx context.Context) (parking.Policy, error)
}
