package commands_test

import (
	"context"

	"ostrack/internal/core/application/usecases/commands"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, orderNumber string) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllInStatus(
	ctx context.Context, status workorder.Status,
) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, orderNumber string) error {
	args := m.Called(ctx, orderNumber)
	return args.Error(0)
}

type MockWorkLogRepository struct{ mock.Mock }

func (m *MockWorkLogRepository) Add(ctx context.Context, entry *worklog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkLogRepository) RenameOrderNumber(
	ctx context.Context, oldNumber, newNumber string,
) (int64, error) {
	args := m.Called(ctx, oldNumber, newNumber)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) WorkLogRepository() ports.WorkLogRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLogUoWFactory struct{ mock.Mock }

func (m *MockLogUoWFactory) Create() commands.LogUoW {
	args := m.Called()
	return args.Get(0).(commands.LogUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
