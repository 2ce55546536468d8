package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
		"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
	)
)

// DeleteWorkOrderCommand represents the removal of an order. Log entries that
// reference the order are left in place.
type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	orderNumber string

	guard guard.ConstructorGuard
}

// NewDeleteWorkOrderCommand creates a command for order removal.
func NewDeleteWorkOrderCommand(
	requestedBy kernel.Sector,
	orderNumber string,
) (DeleteWorkOrderCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return DeleteWorkOrderCommand{}, err
	}
	if orderNumber == "" {
		return DeleteWorkOrderCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return DeleteWorkOrderCommand{
		requestedBy: requestedBy,
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c DeleteWorkOrderCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the target order's business key.
func (c DeleteWorkOrderCommand) OrderNumber() string { return c.orderNumber }
