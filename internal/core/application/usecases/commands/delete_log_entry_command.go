package commands

import (
	"errors"

	"github.com/google/uuid"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrDeleteLogEntryCommandIsNotConstructed = errors.New(
		"DeleteLogEntryCommand must be created via NewDeleteLogEntryCommand constructor",
	)
)

// DeleteLogEntryCommand represents the removal of a single activity log entry.
type DeleteLogEntryCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	entryID     uuid.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLogEntryCommand creates a command for log entry removal.
func NewDeleteLogEntryCommand(
	requestedBy kernel.Sector,
	entryID uuid.UUID,
) (DeleteLogEntryCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return DeleteLogEntryCommand{}, err
	}
	if entryID == uuid.Nil {
		return DeleteLogEntryCommand{}, errs.NewValueIsRequiredError("entryID")
	}

	return DeleteLogEntryCommand{
		requestedBy: requestedBy,
		entryID:     entryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLogEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLogEntryCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c DeleteLogEntryCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// EntryID returns the identifier of the entry to remove.
func (c DeleteLogEntryCommand) EntryID() uuid.UUID { return c.entryID }
