package commands

import (
	"errors"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
	"ostrack/internal/pkg/guard"
)

var (
	ErrReportProductionCommandIsNotConstructed = errors.New(
		"ReportProductionCommand must be created via NewReportProductionCommand constructor",
	)
)

// ReportProductionCommand represents a sector reporting its production for an
// order. The reporting sector is the authenticated caller's role.
type ReportProductionCommand struct { //nolint:recvcheck //using for validation
	sector            kernel.Sector
	orderNumber       string
	quantity          int
	defectiveQuantity int
	operatorName      string

	guard guard.ConstructorGuard
}

// NewReportProductionCommand creates a command carrying a production report.
// The order number and the reporting sector are required here; the remaining
// rules (operator, quantities, routing membership) live in the domain model.
func NewReportProductionCommand(
	sector kernel.Sector,
	orderNumber string,
	quantity int,
	defectiveQuantity int,
	operatorName string,
) (ReportProductionCommand, error) {
	if err := sector.Validate(); err != nil {
		return ReportProductionCommand{}, err
	}
	if orderNumber == "" {
		return ReportProductionCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return ReportProductionCommand{
		sector:            sector,
		orderNumber:       orderNumber,
		quantity:          quantity,
		defectiveQuantity: defectiveQuantity,
		operatorName:      operatorName,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProductionCommand) Validate() error {
	return c.guard.Validate(ErrReportProductionCommandIsNotConstructed)
}

// Sector returns the reporting sector (the caller's role).
func (c ReportProductionCommand) Sector() kernel.Sector { return c.sector }

// OrderNumber returns the target order's business key.
func (c ReportProductionCommand) OrderNumber() string { return c.orderNumber }

// Quantity returns the reported good quantity.
func (c ReportProductionCommand) Quantity() int { return c.quantity }

// DefectiveQuantity returns the reported defective quantity.
func (c ReportProductionCommand) DefectiveQuantity() int { return c.defectiveQuantity }

// OperatorName returns the operator who produced the report.
func (c ReportProductionCommand) OperatorName() string { return c.operatorName }
