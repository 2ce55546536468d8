package workorder

import (
	"fmt"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
)

// Routing is the ordered sequence of sectors a work order must pass through.
// It is fixed at order creation time and never mutated afterwards.
type Routing []kernel.Sector

// NewRouting creates a routing from an ordered list of sector names.
// The list must be non-empty and every sector name must be valid.
func NewRouting(sectors []string) (Routing, error) {
	if len(sectors) == 0 {
		return nil, errs.NewValueIsRequiredError("routing")
	}

	routing := make(Routing, 0, len(sectors))
	for i, name := range sectors {
		sector, err := kernel.NewSector(name)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"routing",
				fmt.Errorf("step %d: %w", i, err),
			)
		}
		routing = append(routing, sector)
	}

	return routing, nil
}

// Validate checks the routing is non-empty and every step is a valid sector.
func (r Routing) Validate() error {
	if len(r) == 0 {
		return errs.NewValueIsRequiredError("routing")
	}
	for i, sector := range r {
		if err := sector.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"routing",
				fmt.Errorf("step %d: %w", i, err),
			)
		}
	}
	return nil
}

// Contains reports whether the sector appears anywhere in the routing.
func (r Routing) Contains(sector kernel.Sector) bool {
	for _, s := range r {
		if s == sector {
			return true
		}
	}
	return false
}

// NextAfter returns the routing step that follows the first occurrence of
// sector, and whether such a step exists. The second return is false both
// when sector is the last step and when sector is not in the routing.
func (r Routing) NextAfter(sector kernel.Sector) (kernel.Sector, bool) {
	for i, s := range r {
		if s == sector {
			if i+1 < len(r) {
				return r[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// Last returns the final routing step.
func (r Routing) Last() kernel.Sector {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

// Strings returns the routing as a list of sector names, in order.
func (r Routing) Strings() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.String()
	}
	return out
}
