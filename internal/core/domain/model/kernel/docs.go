// Package kernel contains shared value objects used across the domain model.
//
// The central type is Sector, which identifies both production stations
// (Electrical, Mechanical, Test, Assembly, Warehouse, ...) and the planning
// role PCP. Sector names are open-ended: the set of real stations is plant
// configuration, not a closed enum, so only the special roles the business
// rules depend on are defined as constants here.
package kernel
