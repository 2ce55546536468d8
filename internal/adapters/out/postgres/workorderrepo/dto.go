// Package workorderrepo implements work order persistence over GORM. It maps
// the aggregate to a flat row keyed by the business order number, with the
// routing stored as a postgres text array.
package workorderrepo

import (
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"

	"github.com/lib/pq"
)

// WorkOrderDTO is the database row for a work order aggregate. Status is
// stored by name so rows stay readable and the read model can return it
// without a lookup.
type WorkOrderDTO struct {
	OrderNumber       string         `gorm:"primaryKey"`
	PartName          string         `gorm:"not null"`
	PartNumber        string
	Quantity          int            `gorm:"not null"`
	Note              string
	Priority          string
	Status            string         `gorm:"index;not null"`
	Routing           pq.StringArray `gorm:"type:text[];not null"`
	CurrentSector     string
	PendingSector     string
	CurrentQuantity   int
	DefectiveQuantity int
	OperatorName      string
	CreatedAt         time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	details := aggregate.Details()

	return WorkOrderDTO{
		OrderNumber:       aggregate.OrderNumber(),
		PartName:          details.PartName,
		PartNumber:        details.PartNumber,
		Quantity:          details.Quantity,
		Note:              details.Note,
		Priority:          details.Priority,
		Status:            aggregate.Status().String(),
		Routing:           pq.StringArray(aggregate.Routing().Strings()),
		CurrentSector:     aggregate.CurrentSector().String(),
		PendingSector:     aggregate.PendingSector().String(),
		CurrentQuantity:   aggregate.CurrentQuantity(),
		DefectiveQuantity: aggregate.DefectiveQuantity(),
		OperatorName:      aggregate.OperatorName(),
		CreatedAt:         details.CreatedAt,
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	status, err := workorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	routing, err := workorder.NewRouting(dto.Routing)
	if err != nil {
		return nil, err
	}

	details := workorder.Details{
		PartName:   dto.PartName,
		PartNumber: dto.PartNumber,
		Quantity:   dto.Quantity,
		Note:       dto.Note,
		Priority:   dto.Priority,
		CreatedAt:  dto.CreatedAt,
	}

	return workorder.RestoreWorkOrder(
		dto.OrderNumber,
		details,
		status,
		routing,
		kernel.Sector(dto.CurrentSector),
		kernel.Sector(dto.PendingSector),
		dto.CurrentQuantity,
		dto.DefectiveQuantity,
		dto.OperatorName,
	)
}
