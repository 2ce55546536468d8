package workorder

import (
	"errors"
	"fmt"
	"math"
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

	// ErrOrderIsFinalized is the cause attached to authorization failures for
	// actions attempted against a finalized order.
	ErrOrderIsFinalized = errors.New("order is already Finalized")
)

// Details groups the descriptive attributes of a work order. They carry no
// state machine behavior and are editable by planning through the patch path.
type Details struct {
	PartName   string
	PartNumber string
	Quantity   int
	Note       string
	Priority   string
	CreatedAt  time.Time
}

// WorkOrder is the aggregate root for a manufacturing work order ("OS").
// It is identified by a caller-supplied, globally unique order number and moves
// through its routing under the control of production reports and planning
// decisions.
//
// Invariants:
//   - The routing is non-empty, ordered, and fixed at creation
//   - currentSector and pendingSector, when set, appear in the routing
//   - Once Finalized, no production report or validation is accepted; the
//     administrative Finalize override is the sole exception
//
// The most recent production report (quantities and operator) is overwritten
// on each report; it is not a history. History lives in the activity log.
type WorkOrder struct {
	orderNumber string
	details     Details

	status        Status
	routing       Routing
	currentSector kernel.Sector
	pendingSector kernel.Sector

	currentQuantity   int
	defectiveQuantity int
	operatorName      string

	// persistedOrderNumber/persistedStatus capture the row identity and status
	// this aggregate was loaded with. The repository uses them for its
	// conditional update so a racing writer surfaces as a conflict.
	persistedOrderNumber string
	persistedStatus      Status

	isConstructed bool
}

// NewWorkOrder creates a work order with a caller-chosen initial status and
// current sector. There is no server-enforced default status: planning decides
// where the order starts, which mirrors the system this service replaces.
//
// Validation:
//   - orderNumber must be non-empty
//   - details.Quantity must be positive
//   - status must be a defined status value
//   - routing must be valid (non-empty, every step named)
//   - currentSector, when set, must appear in the routing
//
// A zero details.CreatedAt is replaced with the current time.
func NewWorkOrder(
	orderNumber string,
	details Details,
	status Status,
	currentSector kernel.Sector,
	routing Routing,
) (*WorkOrder, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if details.Quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", details.Quantity, 1, math.MaxInt)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := routing.Validate(); err != nil {
		return nil, err
	}
	if !currentSector.IsEmpty() && !routing.Contains(currentSector) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"currentSector",
			fmt.Errorf("%s is not part of the routing", currentSector),
		)
	}

	if details.CreatedAt.IsZero() {
		details.CreatedAt = time.Now()
	}

	return &WorkOrder{
		orderNumber:          orderNumber,
		details:              details,
		status:               status,
		routing:              routing,
		currentSector:        currentSector,
		persistedOrderNumber: orderNumber,
		persistedStatus:      status,
		isConstructed:        true,
	}, nil
}

// RestoreWorkOrder reconstructs a work order from persistence, including the
// live production report fields. It records the loaded order number and status
// so subsequent updates can be applied conditionally.
func RestoreWorkOrder(
	orderNumber string,
	details Details,
	status Status,
	routing Routing,
	currentSector kernel.Sector,
	pendingSector kernel.Sector,
	currentQuantity int,
	defectiveQuantity int,
	operatorName string,
) (*WorkOrder, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := routing.Validate(); err != nil {
		return nil, err
	}
	if !pendingSector.IsEmpty() && !routing.Contains(pendingSector) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pendingSector",
			fmt.Errorf("%s is not part of the routing", pendingSector),
		)
	}

	return &WorkOrder{
		orderNumber:          orderNumber,
		details:              details,
		status:               status,
		routing:              routing,
		currentSector:        currentSector,
		pendingSector:        pendingSector,
		currentQuantity:      currentQuantity,
		defectiveQuantity:    defectiveQuantity,
		operatorName:         operatorName,
		persistedOrderNumber: orderNumber,
		persistedStatus:      status,
		isConstructed:        true,
	}, nil
}

// Validate ensures the WorkOrder instance was properly constructed.
func (o *WorkOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their order number.
func (o *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && o.orderNumber == other.orderNumber
}

// OrderNumber returns the business key of the order.
func (o *WorkOrder) OrderNumber() string { return o.orderNumber }

// Details returns the descriptive attributes of the order.
func (o *WorkOrder) Details() Details { return o.details }

// Status returns the current lifecycle status.
func (o *WorkOrder) Status() Status { return o.status }

// Routing returns the ordered sector sequence fixed at creation.
func (o *WorkOrder) Routing() Routing { return o.routing }

// CurrentSector returns the sector currently responsible for the order, or
// the empty sector when none is.
func (o *WorkOrder) CurrentSector() kernel.Sector { return o.currentSector }

// PendingSector returns the sector whose report awaits a planning decision,
// or the empty sector when none does.
func (o *WorkOrder) PendingSector() kernel.Sector { return o.pendingSector }

// CurrentQuantity returns the good quantity from the most recent report.
func (o *WorkOrder) CurrentQuantity() int { return o.currentQuantity }

// DefectiveQuantity returns the defective quantity from the most recent report.
func (o *WorkOrder) DefectiveQuantity() int { return o.defectiveQuantity }

// OperatorName returns the operator from the most recent report.
func (o *WorkOrder) OperatorName() string { return o.operatorName }

// PersistedOrderNumber returns the order number this aggregate was loaded with.
// It differs from OrderNumber only after a rename that has not been stored yet.
func (o *WorkOrder) PersistedOrderNumber() string { return o.persistedOrderNumber }

// PersistedStatus returns the status this aggregate was loaded with.
func (o *WorkOrder) PersistedStatus() Status { return o.persistedStatus }

// ReportProduction records a sector's production report and moves the order to
// PendingReview for that sector.
//
// Business rules:
//   - The planning role does not produce; a PCP caller is rejected
//   - Finalized orders accept no further reports
//   - The reporting sector must appear in the order's routing
//   - The operator name is required; quantities must not be negative
//
// The report overwrites any previous quantities and operator, and the
// reporting sector becomes both the current and the pending sector.
func (o *WorkOrder) ReportProduction(sector kernel.Sector, quantity, defective int, operator string) error {
	if err := sector.Validate(); err != nil {
		return err
	}
	if sector.IsPCP() {
		return errs.NewAccessForbiddenError("reportProduction", sector.String())
	}
	if o.status.IsFinal() {
		return errs.NewAccessForbiddenErrorWithCause("reportProduction", sector.String(), ErrOrderIsFinalized)
	}
	if !o.routing.Contains(sector) {
		return errs.NewValueIsInvalidErrorWithCause(
			"sector",
			fmt.Errorf("%s is not part of the routing", sector),
		)
	}
	if operator == "" {
		return errs.NewValueIsRequiredError("operatorName")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	if defective < 0 {
		return errs.NewValueIsOutOfRangeError("defectiveQuantity", defective, 0, math.MaxInt)
	}

	newStatus, err := o.status.Report()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.currentSector = sector
	o.pendingSector = sector
	o.currentQuantity = quantity
	o.defectiveQuantity = defective
	o.operatorName = operator
	return nil
}

// Approve accepts the pending production report. The order advances to the
// routing step after the pending sector, or is finalized when the pending
// sector was the last step. In both cases the pending sector is cleared; on
// finalization the current sector is cleared as well.
//
// Approval is only valid while the order is exactly in PendingReview.
func (o *WorkOrder) Approve() error {
	if o.status == PendingReview && o.pendingSector.IsEmpty() {
		return errs.NewInvalidStateErrorWithCause(
			"validate", o.status.String(),
			errors.New("no pending sector recorded"),
		)
	}

	next, hasNext := o.routing.NextAfter(o.pendingSector)

	newStatus, err := o.status.Approve(!hasNext)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pendingSector = ""
	if hasNext {
		o.currentSector = next
	} else {
		o.currentSector = ""
	}
	return nil
}

// Reject refuses the pending production report, moving the order to Reproved.
// The pending sector is intentionally retained: the rejected sector may file a
// corrected report, which re-enters PendingReview.
//
// Rejection is only valid while the order is exactly in PendingReview.
func (o *WorkOrder) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finalize closes the order unconditionally. This is the planning override:
// it applies from any state, including Reproved and Paused, and only touches
// the status.
func (o *WorkOrder) Finalize() {
	o.status = o.status.Finalize()
}

// Pause stops an in-production order. Only orders in InProgress can be paused;
// the automatic sweep relies on this guard to leave other orders untouched.
func (o *WorkOrder) Pause() error {
	newStatus, err := o.status.Pause()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Rename changes the order's business key. Activity log entries keep pointing
// at the old number; repointing them is an explicit maintenance action.
func (o *WorkOrder) Rename(newOrderNumber string) error {
	if newOrderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = newOrderNumber
	return nil
}

// SetPartName updates the part name.
func (o *WorkOrder) SetPartName(name string) {
	o.details.PartName = name
}

// SetPartNumber updates the part number.
func (o *WorkOrder) SetPartNumber(number string) {
	o.details.PartNumber = number
}

// SetQuantity updates the ordered quantity. It must remain positive.
func (o *WorkOrder) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	o.details.Quantity = quantity
	return nil
}

// SetNote updates the free-form note.
func (o *WorkOrder) SetNote(note string) {
	o.details.Note = note
}

// SetPriority updates the priority label.
func (o *WorkOrder) SetPriority(priority string) {
	o.details.Priority = priority
}

// SetStatus overwrites the status through the planning patch path. The value
// must be a defined status; no transition rules are applied. This is how a
// paused order gets resumed manually.
func (o *WorkOrder) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SetCurrentSector overwrites the current sector through the planning patch
// path. An empty sector clears it; a named sector must appear in the routing.
func (o *WorkOrder) SetCurrentSector(sector kernel.Sector) error {
	if !sector.IsEmpty() && !o.routing.Contains(sector) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currentSector",
			fmt.Errorf("%s is not part of the routing", sector),
		)
	}
	o.currentSector = sector
	return nil
}
