// Package workorder provides the domain model for manufacturing work orders.
// It implements the WorkOrder aggregate root with its routing and status
// state machine.
//
// The package includes:
//   - WorkOrder: The aggregate root identified by a caller-supplied order number
//   - Status: A state machine enforcing valid status transitions
//   - Routing: The ordered sequence of sectors an order must pass through
//
// Key business rules:
//   - Routing is fixed at creation time, non-empty and ordered
//   - A production report moves the order to PendingReview for the reporting sector
//   - Only planning approval advances an order to the next routing step; approval
//     of the last step finalizes the order
//   - Finalized is absorbing: no reports or validations are accepted afterwards,
//     with administrative finalization as the sole override
//
// The package follows Domain-Driven Design principles: private fields, validated
// constructors, and transitions expressed as methods on the aggregate.
package workorder
