// Package worklogrepo implements activity log persistence over GORM. Entries
// keep a nullable order number so deleting or detaching an order leaves its
// history in place.
package worklogrepo

import (
	"time"

	"ostrack/internal/core/domain/model/worklog"

	"github.com/google/uuid"
)

// LogEntryDTO is the database row for an activity log entry.
type LogEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber *string   `gorm:"index"`
	Sector      string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Date        time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "work_order_logs".
func (LogEntryDTO) TableName() string {
	return "work_order_logs"
}

func fromDomain(entry *worklog.Entry) LogEntryDTO {
	var orderNumber *string
	if n := entry.OrderNumber(); n != "" {
		orderNumber = &n
	}

	return LogEntryDTO{
		ID:          entry.ID(),
		OrderNumber: orderNumber,
		Sector:      entry.Sector().String(),
		Description: entry.Description(),
		Date:        entry.Date(),
	}
}
