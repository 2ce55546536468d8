package queries

import (
	"context"
	"database/sql"
	"errors"

	"ostrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler reads one work order by its order number.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for single-order reads.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when no order carries
// the requested number.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (WorkOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return WorkOrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+workOrderColumns+`
		FROM work_orders
		WHERE order_number = ?
	`, query.OrderNumber()).Row()

	resp, err := scanWorkOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WorkOrderResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
		}
		return WorkOrderResponse{}, err
	}

	return resp, nil
}
