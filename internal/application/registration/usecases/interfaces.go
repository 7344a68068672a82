package usecases

import (
	"context"
	"time"
)

// TransactionManager runs a function as one atomic store transaction,
// transparently retrying the whole body on store-detected write conflicts.
// Bodies must be free of non-idempotent external side effects.
type TransactionManager interface {
	RunWithRetry(ctx context.Context, fn func(ctx context.Context) error) error
}

// SubmitGuard is a best-effort duplicate pre-check in front of the
// transactional dedup. A guard failure never blocks a submission; the
// transactional dedup key remains the source of truth.
type SubmitGuard interface {
	// SeenRecently reports whether the fingerprint was marked within its TTL.
	SeenRecently(ctx context.Context, fingerprint string) (bool, error)
	// MarkSubmitted records the fingerprint after a successful commit.
	MarkSubmitted(ctx context.Context, fingerprint string, ttl time.Duration) error
}

// AuditEntry describes an operator-visible action for the audit trail.
type AuditEntry struct {
	Actor   string
	RowID   string
	Action  string
	Details map[string]any
}

// AuditRecorder writes audit entries after a transaction commits.
// Recording is best-effort: failures are logged by the implementation and
// never propagated as submission failures.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}

// Executor interfaces consumed by the HTTP handlers.
type SubmitRegistrationExecutor interface {
	Execute(ctx context.Context, cmd SubmitRegistrationCommand) (*SubmitRegistrationResult, error)
}

type FallbackSubmitExecutor interface {
	Execute(ctx context.Context, cmd SubmitRegistrationCommand) (*SubmitRegistrationResult, error)
}

type AssignLotExecutor interface {
	Execute(ctx context.Context, cmd AssignLotCommand) (*AssignLotResult, error)
}

type QuoteChargeExecutor interface {
	Execute(ctx context.Context, query QuoteChargeQuery) (*QuoteChargeResult, error)
}

type ListRegistrationsExecutor interface {
	Execute(ctx context.Context, query ListRegistrationsQuery) (*ListRegistrationsResult, error)
}
