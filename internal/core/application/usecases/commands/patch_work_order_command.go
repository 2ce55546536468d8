package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrPatchWorkOrderCommandIsNotConstructed = errors.New(
		"PatchWorkOrderCommand must be created via NewPatchWorkOrderCommand constructor",
	)
)

// WorkOrderPatch carries the allow-listed fields of a partial update. A nil
// field means "leave as is". NewOrderNumber renames the order itself; log
// entries keep the old number.
type WorkOrderPatch struct {
	PartName       *string
	PartNumber     *string
	Quantity       *int
	Note           *string
	Priority       *string
	Status         *string
	CurrentSector  *string
	NewOrderNumber *string
}

func (p WorkOrderPatch) isEmpty() bool {
	return p.PartName == nil && p.PartNumber == nil && p.Quantity == nil &&
		p.Note == nil && p.Priority == nil && p.Status == nil &&
		p.CurrentSector == nil && p.NewOrderNumber == nil
}

// PatchWorkOrderCommand represents a partial update of an order's fields.
type PatchWorkOrderCommand struct { //nolint:recvcheck //using for validation
	requestedBy kernel.Sector
	orderNumber string
	patch       WorkOrderPatch

	guard guard.ConstructorGuard
}

// NewPatchWorkOrderCommand creates a command for a partial update. At least
// one patch field must be set.
func NewPatchWorkOrderCommand(
	requestedBy kernel.Sector,
	orderNumber string,
	patch WorkOrderPatch,
) (PatchWorkOrderCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return PatchWorkOrderCommand{}, err
	}
	if orderNumber == "" {
		return PatchWorkOrderCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if patch.isEmpty() {
		return PatchWorkOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}
	if patch.NewOrderNumber != nil && *patch.NewOrderNumber == "" {
		return PatchWorkOrderCommand{}, errs.NewValueIsRequiredError("newOrderNumber")
	}

	return PatchWorkOrderCommand{
		requestedBy: requestedBy,
		orderNumber: orderNumber,
		patch:       patch,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchWorkOrderCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c PatchWorkOrderCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the target order's business key.
func (c PatchWorkOrderCommand) OrderNumber() string { return c.orderNumber }

// Patch returns the fields to update.
func (c PatchWorkOrderCommand) Patch() WorkOrderPatch { return c.patch }
