package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
)

// CreateWorkOrderCommand represents a planning request to register a new work
// order. The initial status and current sector are chosen by the caller, as is
// the globally unique order number.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	requestedBy   kernel.Sector
	orderNumber   string
	details       workorder.Details
	status        workorder.Status
	currentSector kernel.Sector
	routing       []string

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a work order.
// Field validation beyond basic construction happens in the domain model;
// the command only carries the caller's intent.
func NewCreateWorkOrderCommand(
	requestedBy kernel.Sector,
	orderNumber string,
	details workorder.Details,
	status workorder.Status,
	currentSector kernel.Sector,
	routing []string,
) (CreateWorkOrderCommand, error) {
	if err := requestedBy.Validate(); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return CreateWorkOrderCommand{
		requestedBy:   requestedBy,
		orderNumber:   orderNumber,
		details:       details,
		status:        status,
		currentSector: currentSector,
		routing:       routing,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// RequestedBy returns the caller's role.
func (c CreateWorkOrderCommand) RequestedBy() kernel.Sector { return c.requestedBy }

// OrderNumber returns the business key chosen by the caller.
func (c CreateWorkOrderCommand) OrderNumber() string { return c.orderNumber }

// Details returns the descriptive attributes.
func (c CreateWorkOrderCommand) Details() workorder.Details { return c.details }

// Status returns the caller-chosen initial status.
func (c CreateWorkOrderCommand) Status() workorder.Status { return c.status }

// CurrentSector returns the caller-chosen initial sector, possibly empty.
func (c CreateWorkOrderCommand) CurrentSector() kernel.Sector { return c.currentSector }

// Routing returns the ordered sector names for the order's routing.
func (c CreateWorkOrderCommand) Routing() []string { return c.routing }
