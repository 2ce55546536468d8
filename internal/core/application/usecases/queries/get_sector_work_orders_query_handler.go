package queries

import (
	"context"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetSectorWorkOrdersQueryHandler reads the order set and narrows it to what
// the calling sector may see. Filtering happens in memory on read-model rows;
// pagination applies after the filter so page counters reflect the visible
// set, not the raw table.
type GetSectorWorkOrdersQueryHandler struct {
	policy   services.AccessPolicy
	filter   services.VisibilityFilter
	allQuery GetAllWorkOrdersQueryHandler
}

// NewGetSectorWorkOrdersQueryHandler creates a handler for sector-scoped reads.
func NewGetSectorWorkOrdersQueryHandler(
	db *gorm.DB, assembly services.AssemblyGroupConfig,
) GetSectorWorkOrdersQueryHandler {
	return GetSectorWorkOrdersQueryHandler{
		policy:   services.NewAccessPolicy(),
		filter:   services.NewVisibilityFilter(assembly),
		allQuery: NewGetAllWorkOrdersQueryHandler(db),
	}
}

// Handle executes the query and returns the caller's page of visible orders.
func (h GetSectorWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSectorWorkOrdersQuery,
) (Page[WorkOrderResponse], error) {
	if err := query.Validate(); err != nil {
		return Page[WorkOrderResponse]{}, err
	}

	orders, err := h.allQuery.Handle(ctx, NewGetAllWorkOrdersQuery())
	if err != nil {
		return Page[WorkOrderResponse]{}, err
	}

	if !h.policy.SeesUnfiltered(query.Caller()) {
		orders = h.filterVisible(orders, query.Caller())
	}

	return Paginate(orders, query.PageNumber(), query.Limit()), nil
}

func (h GetSectorWorkOrdersQueryHandler) filterVisible(
	orders []WorkOrderResponse, caller kernel.Sector,
) []WorkOrderResponse {
	visible := make([]WorkOrderResponse, 0, len(orders))
	for _, row := range orders {
		status, err := workorder.StatusFromString(row.Status)
		if err != nil {
			continue
		}

		routing := make(workorder.Routing, 0, len(row.Routing))
		for _, name := range row.Routing {
			routing = append(routing, kernel.Sector(name))
		}

		if h.filter.Visible(status, kernel.Sector(row.CurrentSector), routing, caller) {
			visible = append(visible, row)
		}
	}
	return visible
}
