package worklogrepo

import (
	"context"

	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWorkLogRepository implements WorkLogRepository using GORM.
type GormWorkLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormWorkLogRepository creates a new GORM work log repository.
func NewGormWorkLogRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkLogRepository {
	return &GormWorkLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a log entry.
func (r *GormWorkLogRepository) Add(ctx context.Context, entry *worklog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID().String(), entry)
	return nil
}

// Delete removes a single entry by its identifier.
func (r *GormWorkLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}

	result := r.db.WithContext(ctx).Delete(&LogEntryDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", id.String())
	}

	return nil
}

// RenameOrderNumber repoints every entry referencing oldNumber to newNumber.
// An empty newNumber detaches the entries instead. Returns how many rows
// changed; zero is not an error, the caller decides what that means.
func (r *GormWorkLogRepository) RenameOrderNumber(
	ctx context.Context, oldNumber, newNumber string,
) (int64, error) {
	if oldNumber == "" {
		return 0, errs.NewValueIsRequiredError("oldNumber")
	}

	var value *string
	if newNumber != "" {
		value = &newNumber
	}

	result := r.db.WithContext(ctx).
		Model(&LogEntryDTO{}).
		Where("order_number = ?", oldNumber).
		Update("order_number", value)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
