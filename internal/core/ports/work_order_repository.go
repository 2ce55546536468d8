// Package ports defines the persistence contracts the application core depends on.
package ports

import (
	"context"

	"ostrack/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order aggregates.
// Orders are addressed by their business key, the caller-supplied order number.
type WorkOrderRepository interface {
	// Add persists a new work order. The order number must not already exist.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order. The update is
	// conditional on the status the aggregate was loaded with: if another
	// writer changed the row's status in the meantime, Update fails with a
	// version error instead of overwriting.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by its order number.
	Get(ctx context.Context, orderNumber string) (*workorder.WorkOrder, error)

	// GetAll retrieves every work order, ordered by creation time.
	GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)

	// GetAllInStatus retrieves all work orders currently in the given status.
	// The sweep uses this to find orders in production.
	GetAllInStatus(ctx context.Context, status workorder.Status) ([]*workorder.WorkOrder, error)

	// Delete removes a work order. Its activity log entries are not touched.
	Delete(ctx context.Context, orderNumber string) error
}
