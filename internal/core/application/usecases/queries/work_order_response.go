package queries

import (
	"time"

	"github.com/lib/pq"
)

// WorkOrderResponse is the read model row for a work order. Routing is the
// ordered list of sector names; PendingSector is empty unless a production
// report awaits review.
type WorkOrderResponse struct {
	OrderNumber       string
	PartName          string
	PartNumber        string
	Quantity          int
	Note              string
	Priority          string
	Status            string
	Routing           []string
	CurrentSector     string
	PendingSector     string
	CurrentQuantity   int
	DefectiveQuantity int
	OperatorName      string
	CreatedAt         time.Time
}

// workOrderColumns is the select list every work order query shares. Scan
// order must match scanWorkOrderRow.
const workOrderColumns = `
	order_number,
	part_name,
	part_number,
	quantity,
	note,
	priority,
	status,
	routing,
	current_sector,
	pending_sector,
	current_quantity,
	defective_quantity,
	operator_name,
	created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkOrderRow(row rowScanner) (WorkOrderResponse, error) {
	var resp WorkOrderResponse
	var routing pq.StringArray

	err := row.Scan(
		&resp.OrderNumber,
		&resp.PartName,
		&resp.PartNumber,
		&resp.Quantity,
		&resp.Note,
		&resp.Priority,
		&resp.Status,
		&routing,
		&resp.CurrentSector,
		&resp.PendingSector,
		&resp.CurrentQuantity,
		&resp.DefectiveQuantity,
		&resp.OperatorName,
		&resp.CreatedAt,
	)
	if err != nil {
		return WorkOrderResponse{}, err
	}

	resp.Routing = routing
	return resp, nil
}
