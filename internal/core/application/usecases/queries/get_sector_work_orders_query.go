package queries

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/guard"
)

var (
	ErrGetSectorWorkOrdersQueryIsNotConstructed = errors.New(
		"GetSectorWorkOrdersQuery must be created via NewGetSectorWorkOrdersQuery constructor",
	)
)

// GetSectorWorkOrdersQuery retrieves the work orders visible to the calling
// sector, paginated. Unfiltered roles see everything; production sectors see
// orders routed through them per the visibility rules.
type GetSectorWorkOrdersQuery struct {
	caller kernel.Sector
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetSectorWorkOrdersQuery creates a query for the caller's view of the
// order set. Out-of-range page and limit values are normalized during
// pagination, not rejected here.
func NewGetSectorWorkOrdersQuery(caller kernel.Sector, page, limit int) (GetSectorWorkOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetSectorWorkOrdersQuery{}, err
	}

	return GetSectorWorkOrdersQuery{
		caller: caller,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSectorWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSectorWorkOrdersQueryIsNotConstructed)
}

// Caller returns the requesting sector.
func (q GetSectorWorkOrdersQuery) Caller() kernel.Sector { return q.caller }

// PageNumber returns the requested page, possibly out of range.
func (q GetSectorWorkOrdersQuery) PageNumber() int { return q.page }

// Limit returns the requested page size, possibly out of range.
func (q GetSectorWorkOrdersQuery) Limit() int { return q.limit }
