package commands_test

import (
	"errors"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	orderRepo := &MockOrderRepository{}
	uow := &MockUoW{}
	factory := &MockOrderUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(errors.New("no active transaction")).Maybe()

	var persisted *order.Order
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*order.Order)
		}).
		Return(nil)

	handler := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(now))
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-001", order.OriginDineIn, "table 7",
		testItems(t), order.PriorityNormal, 15,
	)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, order.Received, persisted.Status())
	assert.Equal(t, now, persisted.ReceivedAt())
	assert.Nil(t, persisted.StartedAt())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RollsBackOnAddError(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	uow := &MockUoW{}
	factory := &MockOrderUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate order number"))

	handler := commands.NewCreateOrderCommandHandler(factory, clock.System())
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-002", order.OriginTakeaway, "",
		testItems(t), order.PriorityNormal, 10,
	)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate order number")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_RejectsUnconstructedCommand(t *testing.T) {
	ctx := t.Context()
	factory := &MockOrderUoWFactory{}

	handler := commands.NewCreateOrderCommandHandler(factory, clock.System())

	var cmd commands.CreateOrderCommand
	err := handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
