package commands

import (
	"context"
	"fmt"
	"time"

	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/services"
)

// ValidateProductionCommandHandler executes the planning decision over a
// pending production report. Approval advances the order to the next routing
// step, or finalizes it when the pending sector was the last step; rejection
// moves the order to Reproved. Validation outside PendingReview fails with an
// invalid-state error.
type ValidateProductionCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewValidateProductionCommandHandler creates a handler for planning decisions.
func NewValidateProductionCommandHandler(uowFactory UoWFactory) ValidateProductionCommandHandler {
	return ValidateProductionCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the validation command.
func (h ValidateProductionCommandHandler) Handle(ctx context.Context, cmd ValidateProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.RequestedBy(), services.ActionValidate); err != nil {
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

	reviewed := order.PendingSector()

	var description string
	if cmd.Approved() {
		if err = order.Approve(); err != nil {
			return err
		}
		if order.Status().IsFinal() {
			description = fmt.Sprintf("Production of %s approved, order finalized", reviewed)
		} else {
			description = fmt.Sprintf("Production of %s approved, advanced to %s", reviewed, order.CurrentSector())
		}
	} else {
		if err = order.Reject(); err != nil {
			return err
		}
		description = fmt.Sprintf("Production of %s rejected", reviewed)
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	entry, err := worklog.NewEntry(order.OrderNumber(), cmd.RequestedBy(), description, time.Now())
	if err != nil {
		return err
	}

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
