package commands

import (
	"context"
	"time"

	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/services"
)

// FinalizeWorkOrderCommandHandler force-closes an order. The transition is
// unconditional: an order in any status, including one awaiting review, ends
// up Finalized.
type FinalizeWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewFinalizeWorkOrderCommandHandler creates a handler for forced closes.
func NewFinalizeWorkOrderCommandHandler(uowFactory UoWFactory) FinalizeWorkOrderCommandHandler {
	return FinalizeWorkOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the forced close command.
func (h FinalizeWorkOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionFinalize); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()

	order, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	order.Finalize()

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := worklog.NewEntry(order.OrderNumber(), cmd.RequestedBy(), "Order finalized", time.Now())
	if err != nil {
		return err
	}

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
