package commands_test

import (
	"errors"
	"testing"
	"time"

	"thalitrack/internal/core/application/usecases/commands"
	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, id kernel.UUID, thaliCount int) *order.Order {
	t.Helper()
	aggregate, err := order.NewRegularOrder(
		id, "Ravi Kumar", mustPhone(t, "9876543210"), thaliCount, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestRecordDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRecordDeliveryCommand(id, 4, "Sunil", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(pendingOrder(t, id, 10), nil).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.RemainingQuantity() == 6 && o.Status() == order.StatusPartiallyDelivered
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordDeliveryCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewRecordDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRecordDeliveryCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRecordDeliveryCommand(id, 4, "Sunil", "")

	notFound := errors.New("order not found")
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, notFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_OverDelivery(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRecordDeliveryCommand(id, 15, "Sunil", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(pendingOrder(t, id, 10), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOverDelivery)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRecordDeliveryCommand(id, 10, "Sunil", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(pendingOrder(t, id, 10), nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
