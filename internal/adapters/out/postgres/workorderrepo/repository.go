package workorderrepo

import (
	"context"
	"errors"
	"fmt"

	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// Update saves changes to an existing work order. The write is conditional on
// the order number and status the aggregate was loaded with, so a racing
// writer surfaces as a version error rather than a silent overwrite. The
// update uses Select("*") so cleared fields, like the pending sector after an
// approval, persist as their zero values.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("order_number = ? AND status = ?",
			aggregate.PersistedOrderNumber(), aggregate.PersistedStatus().String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a vanished row from a lost race.
func (r *GormWorkOrderRepository) classifyMissedUpdate(
	ctx context.Context, aggregate *workorder.WorkOrder,
) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("order_number = ?", aggregate.PersistedOrderNumber()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderNumber", aggregate.PersistedOrderNumber())
	}

	return errs.NewVersionIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("order %s left status %s before the update",
			aggregate.PersistedOrderNumber(), aggregate.PersistedStatus()),
	)
}

// Get retrieves a work order by its order number.
func (r *GormWorkOrderRepository) Get(ctx context.Context, orderNumber string) (*workorder.WorkOrder, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every work order, ordered by creation time.
func (r *GormWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllInStatus retrieves all work orders currently in the given status.
func (r *GormWorkOrderRepository) GetAllInStatus(
	ctx context.Context, status workorder.Status,
) ([]*workorder.WorkOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes a work order. Log entries referencing it are left alone.
func (r *GormWorkOrderRepository) Delete(ctx context.Context, orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	result := r.db.WithContext(ctx).Delete(&WorkOrderDTO{}, "order_number = ?", orderNumber)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderNumber", orderNumber)
	}

	return nil
}

func (r *GormWorkOrderRepository) toDomainAll(dtos []WorkOrderDTO) ([]*workorder.WorkOrder, error) {
	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
