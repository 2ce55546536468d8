package commands

import (
	"context"
	"log/slog"
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/model/workorder"
)

// PauseInProgressCommandHandler pauses every order that is currently in
// progress. The status changes commit in a single transaction; the log
// entries are written afterwards, one transaction per order, so a logging
// failure never rolls back a pause and never drops another order's entry.
type PauseInProgressCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewPauseInProgressCommandHandler creates a handler for the pause sweep.
func NewPauseInProgressCommandHandler(
	uowFactory UoWFactory, logger *slog.Logger,
) PauseInProgressCommandHandler {
	return PauseInProgressCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle pauses all in-progress orders and returns how many were paused.
func (h PauseInProgressCommandHandler) Handle(ctx context.Context, cmd PauseInProgressCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()

	orders, err := orderRepo.GetAllInStatus(ctx, workorder.InProgress)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	paused := make([]string, 0, len(orders))
	for _, order := range orders {
		if err = order.Pause(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, order); err != nil {
			return 0, err
		}
		paused = append(paused, order.OrderNumber())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.appendLogEntries(ctx, paused)

	return len(paused), nil
}

// appendLogEntries records the pause in the activity log. The orders are
// already paused at this point; each entry gets its own transaction, so a
// failure is logged and swallowed without dropping the rest of the batch.
func (h PauseInProgressCommandHandler) appendLogEntries(ctx context.Context, orderNumbers []string) {
	now := time.Now()

	for _, orderNumber := range orderNumbers {
		entry, err := worklog.NewEntry(orderNumber, kernel.SectorSystem, "Production automatically paused", now)
		if err != nil {
			h.logger.Warn("pause sweep could not build log entry", "orderNumber", orderNumber, "error", err)
			continue
		}
		if err = h.appendLogEntry(ctx, entry); err != nil {
			h.logger.Warn("pause sweep could not record log entry", "orderNumber", orderNumber, "error", err)
		}
	}
}

func (h PauseInProgressCommandHandler) appendLogEntry(ctx context.Context, entry *worklog.Entry) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
