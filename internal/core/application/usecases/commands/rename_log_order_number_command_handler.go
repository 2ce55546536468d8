package commands

import (
	"context"

	"ostrack/internal/core/domain/services"
)

// RenameLogOrderNumberCommandHandler rewrites the order number on every
// matching activity log entry and returns how many were touched.
type RenameLogOrderNumberCommandHandler struct {
	uowFactory LogUoWFactory
	policy     services.AccessPolicy
}

// NewRenameLogOrderNumberCommandHandler creates a handler for the bulk rename.
func NewRenameLogOrderNumberCommandHandler(uowFactory LogUoWFactory) RenameLogOrderNumberCommandHandler {
	return RenameLogOrderNumberCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the bulk rename command.
func (h RenameLogOrderNumberCommandHandler) Handle(
	ctx context.Context, cmd RenameLogOrderNumberCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionRenameLogs); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	renamed, err := uow.WorkLogRepository().RenameOrderNumber(ctx, cmd.OldOrderNumber(), cmd.NewOrderNumber())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return renamed, nil
}
