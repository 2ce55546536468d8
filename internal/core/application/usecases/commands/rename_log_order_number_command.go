package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrRenameLogOrderNumberCommandIsNotConstructed = errors.New(
		"RenameLogOrderNumberCommand must be created via NewRenameLogOrderNumberCommand constructor",
	)
)

// RenameLogOrderNumberCommand represents a bulk rewrite of the order number
// on existing activity log entries, typically issued after an order itself
// was renamed.
type RenameLogOrderNumberCommand struct { //nolint:recvcheck //using for validation
	requestedBy    kernel.Sector
	oldOrderNumber string
	newOrderNumber string

	guard guard.ConstructorGuard
}

// NewRenameLogOrderNumberCommand creates a command for the bulk rename.
func NewRenameLogOrderNumberCommand(
	requestedBy kernel.Sector,
	oldOrderNumber string,
	newOrderNumber string,
) (RenameLogOrderNumberCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return RenameLogOrderNumberCommand{}, err
	}
	if oldOrderNumber == "" {
		return RenameLogOrderNumberCommand{}, errs.NewValueIsRequiredError("oldOrderNumber")
	}
	if newOrderNumber == "" {
		return RenameLogOrderNumberCommand{}, errs.NewValueIsRequiredError("newOrderNumber")
	}

	return RenameLogOrderNumberCommand{
		requestedBy:    requestedBy,
		oldOrderNumber: oldOrderNumber,
		newOrderNumber: newOrderNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameLogOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrRenameLogOrderNumberCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c RenameLogOrderNumberCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OldOrderNumber returns the order number currently on the entries.
func (c RenameLogOrderNumberCommand) OldOrderNumber() string { return c.oldOrderNumber }

// NewOrderNumber returns the order number the entries should carry.
func (c RenameLogOrderNumberCommand) NewOrderNumber() string { return c.newOrderNumber }
