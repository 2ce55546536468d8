// Package worklog provides the append-only activity log for work orders.
// Every meaningful transition, whether a manual sector action or an automatic
// sweep action, produces one Entry.
//
// Entry.OrderNumber is a weak reference: no referential integrity is enforced
// against work orders, so deleting an order leaves its entries retrievable as
// orphans, and a renumbered order keeps its history navigable only through the
// explicit bulk-rename maintenance action.
package worklog

import (
	"errors"
	"time"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is a single, immutable activity log record.
type Entry struct {
	id          uuid.UUID
	orderNumber string
	sector      kernel.Sector
	description string
	date        time.Time

	isConstructed bool
}

// NewEntry creates a log entry with a fresh identifier. All four business
// fields are required and must be non-empty.
func NewEntry(orderNumber string, sector kernel.Sector, description string, date time.Time) (*Entry, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := sector.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}

	return &Entry{
		id:            uuid.New(),
		orderNumber:   orderNumber,
		sector:        sector,
		description:   description,
		date:          date,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs a log entry from persistence. The order number may
// be empty here: entries can be orphaned or explicitly detached by the rename
// maintenance action.
func RestoreEntry(
	id uuid.UUID,
	orderNumber string,
	sector kernel.Sector,
	description string,
	date time.Time,
) (*Entry, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := sector.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderNumber:   orderNumber,
		sector:        sector,
		description:   description,
		date:          date,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() uuid.UUID { return e.id }

// OrderNumber returns the weakly referenced order number. Empty for detached entries.
func (e *Entry) OrderNumber() string { return e.orderNumber }

// Sector returns the sector the action was attributed to ("System" for sweeps).
func (e *Entry) Sector() kernel.Sector { return e.sector }

// Description returns the human-readable description of the action.
func (e *Entry) Description() string { return e.description }

// Date returns when the action happened.
func (e *Entry) Date() time.Time { return e.date }
