package commands

import (
	"errors"
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrCreateLogEntryCommandIsNotConstructed = errors.New(
		"CreateLogEntryCommand must be created via NewCreateLogEntryCommand constructor",
	)
)

// CreateLogEntryCommand represents a manual activity log entry. A zero date
// defaults to the current time when the entry is built.
type CreateLogEntryCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	orderNumber string
	description string
	date        time.Time

	guard guard.ConstructorGuard
}

// NewCreateLogEntryCommand creates a command for a manual log entry.
func NewCreateLogEntryCommand(
	requestedBy kernel.Sector,
	orderNumber string,
	description string,
	date time.Time,
) (CreateLogEntryCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return CreateLogEntryCommand{}, err
	}
	if orderNumber == "" {
		return CreateLogEntryCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if description == "" {
		return CreateLogEntryCommand{}, errs.NewValueIsRequiredError("description")
	}

	return CreateLogEntryCommand{
		requestedBy: requestedBy,
		orderNumber: orderNumber,
		description: description,
		date:        date,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLogEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateLogEntryCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c CreateLogEntryCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the order the entry belongs to.
func (c CreateLogEntryCommand) OrderNumber() string { return c.orderNumber }

// Description returns the entry's text.
func (c CreateLogEntryCommand) Description() string { return c.description }

// Date returns the entry's timestamp; zero means "now".
func (c CreateLogEntryCommand) Date() time.Time { return c.date }
