package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrFinalizeWorkOrderCommandIsNotConstructed = errors.New(
		"FinalizeWorkOrderCommand must be created via NewFinalizeWorkOrderCommand constructor",
	)
)

// FinalizeWorkOrderCommand represents a forced close of an order, regardless
// of its current status.
type FinalizeWorkOrderCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	orderNumber string

	guard guard.ConstructorGuard
}

// NewFinalizeWorkOrderCommand creates a command for the forced close.
func NewFinalizeWorkOrderCommand(
	requestedBy kernel.Sector,
	orderNumber string,
) (FinalizeWorkOrderCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return FinalizeWorkOrderCommand{}, err
	}
	if orderNumber == "" {
		return FinalizeWorkOrderCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return FinalizeWorkOrderCommand{
		requestedBy: requestedBy,
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeWorkOrderCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c FinalizeWorkOrderCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the target order's business key.
func (c FinalizeWorkOrderCommand) OrderNumber() string { return c.orderNumber }
