package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllWorkOrdersQueryHandler reads the full order set from the database,
// newest first.
type GetAllWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkOrdersQueryHandler creates a handler for the full order set query.
func NewGetAllWorkOrdersQueryHandler(db *gorm.DB) GetAllWorkOrdersQueryHandler {
	return GetAllWorkOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkOrdersQuery,
) ([]WorkOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]WorkOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + workOrderColumns + `
		FROM work_orders
		ORDER BY created_at DESC, order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanWorkOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
