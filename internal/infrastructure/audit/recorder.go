// Package audit writes the post-commit operator audit trail.
package audit

import (
	"context"

	"github.com/jmbbc/bc-visitor-dashboard/internal/application/registration/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/repository"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/goroutine"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

// Recorder persists audit entries after a transaction commits. Writes happen
// off the request goroutine and failures are logged and swallowed: the audit
// trail never fails or slows a committed operation.
type Recorder struct {
	repo   *repository.AuditLogRepository
	logger logger.Interface
}

func NewRecorder(repo *repository.AuditLogRepository, log logger.Interface) *Recorder {
	return &Recorder{repo: repo, logger: log}
}

func (r *Recorder) Record(ctx context.Context, entry usecases.AuditEntry) {
	// Detach from the request context so an early client disconnect does not
	// cancel the audit write.
	ctx = context.WithoutCancel(ctx)
	goroutine.SafeGo(r.logger, "audit-record", func() {
		if err := r.repo.Create(ctx, entry.Actor, entry.RowID, entry.Action, entry.Details); err != nil {
			r.logger.Warnw("failed to write audit log",
				"error", err, "action", entry.Action, "row_id", entry.RowID)
		}
	})
}
