package commands

import (
	"context"
	"fmt"
	"time"

	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/services"
)

// ReportProductionCommandHandler applies a sector's production report to an
// order, moving it to pending review and recording the report in the activity
// log. The status change and the log entry commit atomically; the conditional
// repository update turns a racing writer into a version error instead of a
// silent overwrite.
type ReportProductionCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewReportProductionCommandHandler creates a handler for production reports.
func NewReportProductionCommandHandler(uowFactory UoWFactory) ReportProductionCommandHandler {
	return ReportProductionCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the production report command.
func (h ReportProductionCommandHandler) Handle(ctx context.Context, cmd ReportProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Allows(cmd.Sector(), services.ActionReportProduction); err != nil {
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

	if err = order.ReportProduction(
		cmd.Sector(), cmd.Quantity(), cmd.DefectiveQuantity(), cmd.OperatorName(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	description := fmt.Sprintf(
		"Production reported by %s: %d good, %d defective",
		cmd.OperatorName(), cmd.Quantity(), cmd.DefectiveQuantity(),
	)
	entry, err := worklog.NewEntry(order.OrderNumber(), cmd.Sector(), description, time.Now())
	if err != nil {
		return err
	}

	if err = uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
