package services

import (
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"
)

// AssemblyGroupConfig is the injected configuration for the assembly-group
// visibility exception. Member is the designated downstream assembly sector;
// Upstream lists the stations feeding it. The list is static plant
// configuration and is never derived from an order's routing.
type AssemblyGroupConfig struct {
	Member   kernel.Sector
	Upstream []kernel.Sector
}

// ContainsUpstream reports whether the sector is one of the configured
// upstream stations.
func (c AssemblyGroupConfig) ContainsUpstream(sector kernel.Sector) bool {
	for _, s := range c.Upstream {
		if s == sector {
			return true
		}
	}
	return false
}

// VisibilityFilter computes which work orders a sector can see.
//
// An order is visible to a sector when:
//   - its current sector equals the caller's sector, or
//   - it is Finalized and the caller's sector appears anywhere in its routing.
//
// The configured assembly member additionally sees orders whose current sector
// is one of the upstream stations, and finalized orders whose routing touched
// any of them.
type VisibilityFilter struct {
	assembly AssemblyGroupConfig
}

// NewVisibilityFilter creates a filter with the given assembly-group configuration.
func NewVisibilityFilter(assembly AssemblyGroupConfig) VisibilityFilter {
	return VisibilityFilter{assembly: assembly}
}

// Visible applies the visibility rules to one order, described by its status,
// current sector, and routing. Taking plain values keeps the filter usable
// from both the domain model and read-model rows.
func (f VisibilityFilter) Visible(
	status workorder.Status,
	currentSector kernel.Sector,
	routing workorder.Routing,
	caller kernel.Sector,
) bool {
	if currentSector == caller && !caller.IsEmpty() {
		return true
	}
	if status.IsFinal() && routing.Contains(caller) {
		return true
	}

	if caller == f.assembly.Member && !caller.IsEmpty() {
		if f.assembly.ContainsUpstream(currentSector) {
			return true
		}
		if status.IsFinal() {
			for _, upstream := range f.assembly.Upstream {
				if routing.Contains(upstream) {
					return true
				}
			}
		}
	}

	return false
}

// FilterOrders returns the subset of orders visible to the caller, preserving order.
func (f VisibilityFilter) FilterOrders(orders []*workorder.WorkOrder, caller kernel.Sector) []*workorder.WorkOrder {
	visible := make([]*workorder.WorkOrder, 0, len(orders))
	for _, o := range orders {
		if f.Visible(o.Status(), o.CurrentSector(), o.Routing(), caller) {
			visible = append(visible, o)
		}
	}
	return visible
}
