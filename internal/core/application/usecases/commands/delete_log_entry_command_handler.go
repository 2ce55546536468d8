package commands

import (
	"context"

	"ostrack/internal/core/domain/services"
)

// DeleteLogEntryCommandHandler removes a single activity log entry.
type DeleteLogEntryCommandHandler struct {
	uowFactory LogUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteLogEntryCommandHandler creates a handler for log entry removal.
func NewDeleteLogEntryCommandHandler(uowFactory LogUoWFactory) DeleteLogEntryCommandHandler {
	return DeleteLogEntryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the log entry removal command.
func (h DeleteLogEntryCommandHandler) Handle(ctx context.Context, cmd DeleteLogEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionDeleteLog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkLogRepository().Delete(ctx, cmd.EntryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
