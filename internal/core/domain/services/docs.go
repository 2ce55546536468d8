// Package services provides stateless domain services for work order routing.
//
// AccessPolicy decides which actions a role may perform and which roles see the
// unfiltered order set. VisibilityFilter decides which orders a sector can see,
// including the configurable assembly-group exception that grants the designated
// downstream assembly station visibility into the upstream stations feeding it.
package services
