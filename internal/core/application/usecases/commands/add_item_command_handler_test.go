package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	cmd, _ := commands.NewAddItemCommand(stored.ID(), commands.ItemSpec{
		Name: "Monitor", Category: "Electronics", ProductID: 1300,
		Price: mustPrice(t, "199.00"), Quantity: 1,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	assert.Len(t, updated.Items(), 2)
	assert.Equal(t, "248.99", updated.TotalPrice().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_InvalidItemSpec(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	cmd, _ := commands.NewAddItemCommand(stored.ID(), commands.ItemSpec{
		Name: "", ProductID: 1300, Price: mustPrice(t, "199.00"), Quantity: 1,
	})

	factory := new(MockOrderUoWFactory)
	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	cmd, _ := commands.NewAddItemCommand(stored.ID(), commands.ItemSpec{
		Name: "Monitor", Category: "Electronics", ProductID: 1300,
		Price: mustPrice(t, "199.00"), Quantity: 1,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).
			Return(nil, errs.NewObjectNotFoundError("order_id", stored.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
