package commands

import (
	"context"
	"time"

	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/services"
)

// CreateWorkOrderCommandHandler handles the business logic for order creation.
// Only planning may create orders; the order and its creation log entry are
// persisted in one transaction.
type CreateWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewCreateWorkOrderCommandHandler creates a handler for order creation operations.
func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order creation command.
// Builds the aggregate with the caller-chosen initial state, persists it, and
// appends the "order created" log entry.
func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionCreateOrder); err != nil {
		return err
	}

	routing, err := workorder.NewRouting(cmd.Routing())
	if err != nil {
		return err
	}

	order, err := workorder.NewWorkOrder(
		cmd.OrderNumber(), cmd.Details(), cmd.Status(), cmd.CurrentSector(), routing,
	)
	if err != nil {
		return err
	}

	entry, err := worklog.NewEntry(order.OrderNumber(), cmd.RequestedBy(), "Order created", time.Now())
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

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
