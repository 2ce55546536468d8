package commands

import (
	"context"
	"time"

	"ostrack/internal/core/domain/model/worklog"
)

// CreateLogEntryCommandHandler records a manual activity log entry. Any
// authenticated role may write to the log, so no policy check applies here.
type CreateLogEntryCommandHandler struct {
	uowFactory LogUoWFactory
}

// NewCreateLogEntryCommandHandler creates a handler for manual log entries.
func NewCreateLogEntryCommandHandler(uowFactory LogUoWFactory) CreateLogEntryCommandHandler {
	return CreateLogEntryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the manual log entry command.
func (h CreateLogEntryCommandHandler) Handle(ctx context.Context, cmd CreateLogEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	date := cmd.Date()
	if date.IsZero() {
		date = time.Now()
	}

	entry, err := worklog.NewEntry(cmd.OrderNumber(), cmd.RequestedBy(), cmd.Description(), date)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
