package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWorkOrderLogEntriesQueryHandler reads one order's activity log. An order
// with no entries yields an empty slice, not an error; the log does not know
// whether the order itself exists.
type GetWorkOrderLogEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderLogEntriesQueryHandler creates a handler for per-order log reads.
func NewGetWorkOrderLogEntriesQueryHandler(db *gorm.DB) GetWorkOrderLogEntriesQueryHandler {
	return GetWorkOrderLogEntriesQueryHandler{db: db}
}

// Handle executes the query, newest entries first.
func (h GetWorkOrderLogEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderLogEntriesQuery,
) ([]LogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, sector, description, date
		FROM work_order_logs
		WHERE order_number = ?
		ORDER BY date DESC
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogEntries(rows)
}
