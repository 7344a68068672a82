package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

type AssignLotCommand struct {
	RegistrationID string
	LotID          string
	AssignedBy     string
}

type AssignLotResult struct {
	RegistrationID string
	LotID          string
	DateKey        string
	AssignedAt     time.Time
}

// AssignLotUseCase allocates a parking lot to a registration for its arrival
// date. The read, the conflict check and the write run in one transaction so
// two operators racing for the same lot cannot both win.
type AssignLotUseCase struct {
	regRepo registration.Repository
	tx      TransactionManager
	audit   AuditRecorder // optional
	logger  logger.Interface
}

func NewAssignLotUseCase(
	regRepo registration.Repository,
	tx TransactionManager,
	audit AuditRecorder,
	log logger.Interface,
) *AssignLotUseCase {
	return &AssignLotUseCase{
		regRepo: regRepo,
		tx:      tx,
		audit:   audit,
		logger:  log,
	}
}

func (uc *AssignLotUseCase) Execute(ctx context.Context, cmd AssignLotCommand) (*AssignLotResult, error) {
	if cmd.RegistrationID == "" {
		return nil, errors.NewValidationError("registration id is required")
	}
	if cmd.LotID == "" {
		return nil, errors.NewValidationError("lot id is required")
	}

	var result *AssignLotResult

	txErr := uc.tx.RunWithRetry(ctx, func(txCtx context.Context) error {
		// GetByID returns a NotFoundError for an unknown id, never (nil, nil),
		// and locks the row for the rest of the transaction.
		reg, err := uc.regRepo.GetByID(txCtx, cmd.RegistrationID)
		if err != nil {
			return err
		}

		dateKey := biztime.DateKey(reg.ETA())

		// Same-lot re-assign is a no-op refresh; skip the conflict query so
		// the row currently holding the lot does not conflict with itself.
		if reg.ParkingLot() != cmd.LotID {
			taken, err := uc.regRepo.HasLotConflict(txCtx, dateKey, cmd.LotID, reg.ID())
			if err != nil {
				return fmt.Errorf("failed to check lot availability: %w", err)
			}
			if taken {
				return errors.NewResourceConflictError(
					"parking lot already assigned",
					fmt.Sprintf("lot %s is taken for %s", cmd.LotID, dateKey),
				)
			}
		}

		if err := reg.AssignLot(cmd.LotID, cmd.AssignedBy); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.regRepo.Update(txCtx, reg); err != nil {
			return fmt.Errorf("failed to update registration: %w", err)
		}

		assignedAt := biztime.NowUTC()
		if at := reg.AssignedAt(); at != nil {
			assignedAt = *at
		}
		result = &AssignLotResult{
			RegistrationID: reg.ID(),
			LotID:          cmd.LotID,
			DateKey:        dateKey,
			AssignedAt:     assignedAt,
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		uc.logger.Errorw("lot assignment transaction failed",
			"error", txErr, "registration_id", cmd.RegistrationID, "lot_id", cmd.LotID)
		return nil, errors.NewInternalError("failed to assign parking lot", txErr.Error())
	}

	// The audit row is written after the commit, mirroring the allocation as
	// the operator saw it succeed.
	if uc.audit != nil {
		uc.audit.Record(ctx, AuditEntry{
			Actor:  cmd.AssignedBy,
			RowID:  result.RegistrationID,
			Action: "assign_parking_lot",
			Details: map[string]any{
				"lotId":   result.LotID,
				"dateKey": result.DateKey,
			},
		})
	}

	uc.logger.Infow("parking lot assigned",
		"registration_id", result.RegistrationID,
		"lot_id", result.LotID,
		"date_key", result.DateKey)

	return result, nil
}
