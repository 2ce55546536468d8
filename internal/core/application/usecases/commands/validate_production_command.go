package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrValidateProductionCommandIsNotConstructed = errors.New(
		"ValidateProductionCommand must be created via NewValidateProductionCommand constructor",
	)
)

// ValidateProductionCommand represents the planning decision over a pending
// production report: approval advances the order along its routing, rejection
// moves it to Reproved.
type ValidateProductionCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	orderNumber string
	approved    bool

	guard guard.ConstructorGuard
}

// NewValidateProductionCommand creates a command for the planning decision.
func NewValidateProductionCommand(
	requestedBy kernel.Sector,
	orderNumber string,
	approved bool,
) (ValidateProductionCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return ValidateProductionCommand{}, err
	}
	if orderNumber == "" {
		return ValidateProductionCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return ValidateProductionCommand{
		requestedBy: requestedBy,
		orderNumber: orderNumber,
		approved:    approved,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateProductionCommand) Validate() error {
	return c.guard.Validate(ErrValidateProductionCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c ValidateProductionCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the target order's business key.
func (c ValidateProductionCommand) OrderNumber() string { return c.orderNumber }

// Approved reports whether planning accepted the production report.
func (c ValidateProductionCommand) Approved() bool { return c.approved }
