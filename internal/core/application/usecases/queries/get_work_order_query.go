package queries

import (
	"errors"

	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrGetWorkOrderQueryIsNotConstructed = errors.New(
		"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
	)
)

// GetWorkOrderQuery retrieves a single work order by its order number.
type GetWorkOrderQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for one order.
func NewGetWorkOrderQuery(orderNumber string) (GetWorkOrderQuery, error) {
	if orderNumber == "" {
		return GetWorkOrderQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetWorkOrderQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// OrderNumber returns the requested business key.
func (q GetWorkOrderQuery) OrderNumber() string { return q.orderNumber }
