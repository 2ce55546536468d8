package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllLogEntriesQueryHandler reads the full activity log from the database.
type GetAllLogEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLogEntriesQueryHandler creates a handler for full log reads.
func NewGetAllLogEntriesQueryHandler(db *gorm.DB) GetAllLogEntriesQueryHandler {
	return GetAllLogEntriesQueryHandler{db: db}
}

// Handle executes the query, newest entries first.
func (h GetAllLogEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllLogEntriesQuery,
) ([]LogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, sector, description, date
		FROM work_order_logs
		ORDER BY date DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogEntries(rows)
}

func collectLogEntries(rows *sql.Rows) ([]LogEntryResponse, error) {
	entries := make([]LogEntryResponse, 0)

	for rows.Next() {
		var entry LogEntryResponse
		var orderNumber sql.NullString

		err := rows.Scan(&entry.ID, &orderNumber, &entry.Sector, &entry.Description, &entry.Date)
		if err != nil {
			return nil, err
		}

		entry.OrderNumber = orderNumber.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
