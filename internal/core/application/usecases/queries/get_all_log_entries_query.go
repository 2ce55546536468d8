package queries

import (
	"errors"
	"time"

	"ostrack/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetAllLogEntriesQueryIsNotConstructed = errors.New(
		"GetAllLogEntriesQuery must be created via NewGetAllLogEntriesQuery constructor",
	)
)

// GetAllLogEntriesQuery retrieves the whole activity log, newest first.
type GetAllLogEntriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLogEntriesQuery creates a query for the full activity log.
func NewGetAllLogEntriesQuery() GetAllLogEntriesQuery {
	return GetAllLogEntriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllLogEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLogEntriesQueryIsNotConstructed)
}

// LogEntryResponse is the read model row for an activity log entry.
// OrderNumber is empty for entries detached from their order.
type LogEntryResponse struct {
	ID          uuid.UUID
	OrderNumber string
	Sector      string
	Description string
	Date        time.Time
}
