// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization against
// the access policy, transaction management, and persistence.
package commands

import (
	"context"

	"ostrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// WorkLogRepoFactory provides access to the work log repository within a transaction.
	WorkLogRepoFactory interface {
		WorkLogRepository() ports.WorkLogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LogUoW manages transactions for log-only operations.
	LogUoW interface {
		TxManager
		WorkLogRepoFactory
	}

	// LogUoWFactory creates new log unit of work instances.
	LogUoWFactory interface {
		Create() LogUoW
	}

	// UoW manages transactions across work orders and their activity log.
	// Used by commands that mutate an order and append the matching log entry
	// in one transaction.
	UoW interface {
		TxManager
		WorkOrderRepoFactory
		WorkLogRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
