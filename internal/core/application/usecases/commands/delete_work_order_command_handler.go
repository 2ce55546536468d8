package commands

import (
	"context"

	"ostrack/internal/core/domain/services"
)

// DeleteWorkOrderCommandHandler removes an order. Log entries referencing the
// order survive the delete so the activity history stays intact.
type DeleteWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteWorkOrderCommandHandler creates a handler for order removal.
func NewDeleteWorkOrderCommandHandler(uowFactory OrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order removal command.
func (h DeleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionDeleteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkOrderRepository().Delete(ctx, cmd.OrderNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
