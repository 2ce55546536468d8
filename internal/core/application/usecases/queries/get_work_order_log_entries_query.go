package queries

import (
	"errors"

	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrGetWorkOrderLogEntriesQueryIsNotConstructed = errors.New(
		"GetWorkOrderLogEntriesQuery must be created via NewGetWorkOrderLogEntriesQuery constructor",
	)
)

// GetWorkOrderLogEntriesQuery retrieves the activity log of a single order,
// newest first.
type GetWorkOrderLogEntriesQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetWorkOrderLogEntriesQuery creates a query for one order's log.
func NewGetWorkOrderLogEntriesQuery(orderNumber string) (GetWorkOrderLogEntriesQuery, error) {
	if orderNumber == "" {
		return GetWorkOrderLogEntriesQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetWorkOrderLogEntriesQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderLogEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderLogEntriesQueryIsNotConstructed)
}

// OrderNumber returns the order whose log is requested.
func (q GetWorkOrderLogEntriesQuery) OrderNumber() string { return q.orderNumber }
