// Package usecases implements the submission, allocation and reporting
// operations of the visitor registration engine.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/parking"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/registration"
	"github.com/jmbbc/bc-visitor-dashboard/internal/domain/unit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/biztime"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/errors"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/id"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

// DefaultDedupeWindow blocks matching resubmissions for two minutes.
const DefaultDedupeWindow = 2 * time.Minute

type SubmitRegistrationCommand struct {
	HostUnit     string
	HostName     string
	HostPhone    string
	Category     string
	SubCategory  string
	CompanyName  string
	VisitorName  string
	VisitorPhone string
	VehicleNo    string
	StayOver     bool
	ETA          time.Time
	ETD          *time.Time
	// AdminOverride requests skipping the cooldown. It is honored only when
	// CallerIsAdmin is set by the authenticated gateway, never from the raw
	// request body alone.
	AdminOverride bool
	CallerIsAdmin bool
	Actor         string
}

type SubmitRegistrationResult struct {
	RegistrationID  string
	CooldownApplied bool
	CooldownUntil   *time.Time
	// Fallback marks a best-effort write that bypassed the dedup/cooldown
	// transaction. Always false on the primary path.
	Fallback bool
}

// SubmitRegistrationUseCase is the dedup/cooldown transaction coordinator.
// One call creates exactly one registration or none; the dedupe key and the
// cooldown record are the only shared state it contends on.
type SubmitRegistrationUseCase struct {
	regRepo      registration.Repository
	dedupeRepo   registration.DedupeKeyRepository
	cooldownRepo registration.CooldownRepository
	unitRepo     unit.Repository
	policyRepo   parking.PolicyRepository
	tx           TransactionManager
	guard        SubmitGuard   // optional
	audit        AuditRecorder // optional
	dedupeWindow time.Duration
	logger       logger.Interface
}

func NewSubmitRegistrationUseCase(
	regRepo registration.Repository,
	dedupeRepo registration.DedupeKeyRepository,
	cooldownRepo registration.CooldownRepository,
	unitRepo unit.Repository,
	policyRepo parking.PolicyRepository,
	tx TransactionManager,
	guard SubmitGuard,
	audit AuditRecorder,
	dedupeWindow time.Duration,
	log logger.Interface,
) *SubmitRegistrationUseCase {
	if dedupeWindow <= 0 {
		dedupeWindow = DefaultDedupeWindow
	}
	return &SubmitRegistrationUseCase{
		regRepo:      regRepo,
		dedupeRepo:   dedupeRepo,
		cooldownRepo: cooldownRepo,
		unitRepo:     unitRepo,
		policyRepo:   policyRepo,
		tx:           tx,
		guard:        guard,
		audit:        audit,
		dedupeWindow: dedupeWindow,
		logger:       log,
	}
}

func (uc *SubmitRegistrationUseCase) Execute(ctx context.Context, cmd SubmitRegistrationCommand) (*SubmitRegistrationResult, error) {
	// All validation happens before any write.
	reg, err := registration.NewRegistration(
		cmd.HostUnit, cmd.HostName, cmd.VisitorName, cmd.VisitorPhone, cmd.ETA, cmd.ETD,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	reg.SetVisitorDetails(cmd.HostPhone, cmd.Category, cmd.SubCategory, cmd.CompanyName, cmd.VehicleNo, cmd.StayOver)

	fingerprint, err := reg.Fingerprint()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Best-effort fast path: a cache hit saves a doomed transaction. Cache
	// errors are logged and ignored; the transactional dedupe key decides.
	if uc.guard != nil {
		seen, gerr := uc.guard.SeenRecently(ctx, fingerprint)
		if gerr != nil {
			uc.logger.Warnw("submit guard unavailable, continuing without pre-check",
				"error", gerr, "fingerprint", fingerprint)
		} else if seen {
			return nil, errors.NewConflictError(
				"duplicate submission",
				fmt.Sprintf("a matching submission for %s was received moments ago", reg.HostUnit()),
			)
		}
	}

	override := cmd.AdminOverride && cmd.CallerIsAdmin
	cooldownDays := uc.evaluateCooldownDays(ctx, reg.HostUnit(), override)

	// The ID is fixed before the transaction so a store-level retry of the
	// body stays idempotent.
	newID, err := id.GenerateWithPrefix(id.PrefixRegistration, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate registration id", err.Error())
	}
	if err := reg.SetID(newID); err != nil {
		return nil, errors.NewInternalError("failed to assign registration id", err.Error())
	}

	result := &SubmitRegistrationResult{RegistrationID: reg.ID()}

	txErr := uc.tx.RunWithRetry(ctx, func(txCtx context.Context) error {
		now := biztime.NowUTC()

		key, err := uc.dedupeRepo.Get(txCtx, fingerprint)
		if err != nil {
			return fmt.Errorf("failed to read dedupe key: %w", err)
		}
		if key.IsFresh(now, uc.dedupeWindow) {
			return errors.NewConflictError(
				"duplicate submission",
				fmt.Sprintf("fingerprint %s already registered at %s", fingerprint, key.CreatedAt.Format(time.RFC3339)),
			)
		}

		record, err := uc.cooldownRepo.Get(txCtx, reg.HostUnit())
		if err != nil {
			return fmt.Errorf("failed to read cooldown record: %w", err)
		}
		if record.Active(now) && !override {
			return errors.NewCooldownActiveError(record.Until)
		}

		if cooldownDays > 0 {
			next := registration.ExtendCooldown(record, reg.HostUnit(), now, cooldownDays)
			if err := uc.cooldownRepo.Upsert(txCtx, next); err != nil {
				return fmt.Errorf("failed to write cooldown record: %w", err)
			}
			until := next.Until
			result.CooldownApplied = true
			result.CooldownUntil = &until
		}

		if err := uc.dedupeRepo.Upsert(txCtx, &registration.DedupeKey{
			Fingerprint:    fingerprint,
			RegistrationID: reg.ID(),
			HostUnit:       reg.HostUnit(),
			VisitorPhone:   reg.VisitorPhone(),
			VisitorName:    reg.VisitorName(),
			ETADateKey:     biztime.DateKey(reg.ETA()),
			CreatedAt:      now,
		}); err != nil {
			return fmt.Errorf("failed to write dedupe key: %w", err)
		}

		return uc.regRepo.Create(txCtx, reg)
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		uc.logger.Errorw("submit transaction failed",
			"error", txErr, "host_unit", reg.HostUnit(), "fingerprint", fingerprint)
		return nil, errors.NewInternalError("failed to persist registration", txErr.Error())
	}

	// Post-commit effects are best-effort by design: a lost guard mark or
	// audit row must not fail a committed registration.
	if uc.guard != nil {
		if gerr := uc.guard.MarkSubmitted(ctx, fingerprint, uc.dedupeWindow); gerr != nil {
			uc.logger.Warnw("failed to mark submit guard", "error", gerr, "fingerprint", fingerprint)
		}
	}
	if uc.audit != nil {
		uc.audit.Record(ctx, AuditEntry{
			Actor:  cmd.Actor,
			RowID:  reg.ID(),
			Action: "create_registration",
			Details: map[string]any{
				"hostUnit":    reg.HostUnit(),
				"visitorName": reg.VisitorName(),
				"eta":         biztime.DateKey(reg.ETA()),
			},
		})
	}

	uc.logger.Infow("registration created",
		"registration_id", reg.ID(),
		"host_unit", reg.HostUnit(),
		"cooldown_applied", result.CooldownApplied)

	return result, nil
}

// evaluateCooldownDays reads the unit's arrears state and the policy record.
// Any failure here degrades to "no cooldown" so a broken policy document
// never blocks a legitimate submission.
func (uc *SubmitRegistrationUseCase) evaluateCooldownDays(ctx context.Context, unitID string, override bool) int {
	policy, err := uc.policyRepo.Get(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load parking policy, applying no cooldown",
			"error", err, "host_unit", unitID)
		return 0
	}
	policy = policy.Sanitized()

	hasArrears := false
	amount := decimal.Zero
	u, err := uc.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		uc.logger.Warnw("failed to load unit, applying no cooldown",
			"error", err, "host_unit", unitID)
		return 0
	}
	if u != nil {
		hasArrears = u.Arrears
		amount = u.ArrearsAmount
	}

	return policy.CooldownDays(hasArrears, amount, override)
}
