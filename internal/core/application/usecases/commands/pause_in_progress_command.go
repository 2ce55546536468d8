package commands

import (
	"errors"

	"ostrack/internal/pkg/guard"
)

var (
	ErrPauseInProgressCommandIsNotConstructed = errors.New(
		"PauseInProgressCommand must be created via NewPauseInProgressCommand constructor",
	)
)

// PauseInProgressCommand represents the end-of-shift sweep that pauses every
// order currently in progress. It is issued by the scheduler, not by a caller,
// so it carries no role.
type PauseInProgressCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPauseInProgressCommand creates a sweep command.
func NewPauseInProgressCommand() (PauseInProgressCommand, error) {
	return PauseInProgressCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseInProgressCommand) Validate() error {
	return c.guard.Validate(ErrPauseInProgressCommandIsNotConstructed)
}
