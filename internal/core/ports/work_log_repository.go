package ports

import (
	"context"

	"ostrack/internal/core/domain/model/worklog"

	"github.com/google/uuid"
)

// WorkLogRepository defines the persistence contract for activity log entries.
// The log is append-only; entries are never updated except by the explicit
// bulk rename, and reads happen on the query side.
type WorkLogRepository interface {
	// Add appends a log entry.
	Add(ctx context.Context, entry *worklog.Entry) error

	// Delete removes a single entry by its identifier.
	Delete(ctx context.Context, id uuid.UUID) error

	// RenameOrderNumber repoints every entry referencing oldNumber to
	// newNumber. An empty newNumber detaches the entries (order number set
	// to null). Returns the number of entries repointed.
	RenameOrderNumber(ctx context.Context, oldNumber, newNumber string) (int64, error)
}
