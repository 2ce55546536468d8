package queries

import (
	"errors"

	"ostrack/internal/pkg/guard"
)

var (
	ErrGetAllWorkOrdersQueryIsNotConstructed = errors.New(
		"GetAllWorkOrdersQuery must be created via NewGetAllWorkOrdersQuery constructor",
	)
)

// GetAllWorkOrdersQuery retrieves every work order without visibility
// filtering. Intended for the unfiltered roles; the HTTP layer enforces who
// may issue it.
type GetAllWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkOrdersQuery creates a query for the full order set.
func NewGetAllWorkOrdersQuery() GetAllWorkOrdersQuery {
	return GetAllWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkOrdersQueryIsNotConstructed)
}
