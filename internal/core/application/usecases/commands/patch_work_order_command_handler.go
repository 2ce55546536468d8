package commands

import (
	"context"
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/core/domain/services"
)

// PatchWorkOrderCommandHandler applies an allow-listed partial update to an
// order. Renaming the order number does not rewrite log entries; the rename
// log command exists for that.
type PatchWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewPatchWorkOrderCommandHandler creates a handler for partial updates.
func NewPatchWorkOrderCommandHandler(uowFactory UoWFactory) PatchWorkOrderCommandHandler {
	return PatchWorkOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the partial update command.
func (h PatchWorkOrderCommandHandler) Handle(ctx context.Context, cmd PatchWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionPatchOrder); err != nil {
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

	if err = applyPatch(order, cmd.Patch()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := worklog.NewEntry(order.OrderNumber(), cmd.RequestedBy(), "Order updated", time.Now())
	if err != nil {
		return err
	}

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyPatch(order *workorder.WorkOrder, patch WorkOrderPatch) error {
	if patch.PartName != nil {
		order.SetPartName(*patch.PartName)
	}
	if patch.PartNumber != nil {
		order.SetPartNumber(*patch.PartNumber)
	}
	if patch.Quantity != nil {
		if err := order.SetQuantity(*patch.Quantity); err != nil {
			return err
		}
	}
	if patch.Note != nil {
		order.SetNote(*patch.Note)
	}
	if patch.Priority != nil {
		order.SetPriority(*patch.Priority)
	}
	if patch.Status != nil {
		status, err := workorder.StatusFromString(*patch.Status)
		if err != nil {
			return err
		}
		if err = order.SetStatus(status); err != nil {
			return err
		}
	}
	if patch.CurrentSector != nil {
		if err := order.SetCurrentSector(kernel.Sector(*patch.CurrentSector)); err != nil {
			return err
		}
	}
	if patch.NewOrderNumber != nil {
		if err := order.Rename(*patch.NewOrderNumber); err != nil {
			return err
		}
	}

	return nil
}
