package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	itemID := stored.Items()[0].ID()
	cmd, _ := commands.NewUpdateItemCommand(stored.ID(), itemID, commands.ItemSpec{
		Name: "Keyboard", Category: "Electronics", ProductID: 1200,
		Price: mustPrice(t, "59.99"), Quantity: 3,
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

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	item, err := updated.Item(itemID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity())
	assert.Equal(t, "179.97", updated.TotalPrice().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	missingItemID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateItemCommand(stored.ID(), missingItemID, commands.ItemSpec{
		Name: "Keyboard", Category: "Electronics", ProductID: 1200,
		Price: mustPrice(t, "59.99"), Quantity: 3,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
}

// A rejected field set must leave the stored item untouched.
func TestUpdateItemCommandHandler_Handle_InvalidFields(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, 1001)
	itemID := stored.Items()[0].ID()
	cmd, _ := commands.NewUpdateItemCommand(stored.ID(), itemID, commands.ItemSpec{
		Name: "Keyboard", Category: "Electronics", ProductID: 1200,
		Price: mustPrice(t, "59.99"), Quantity: 0,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)

	item, getErr := stored.Item(itemID)
	require.NoError(t, getErr)
	assert.Equal(t, 1, item.Quantity())
	assert.Equal(t, "49.99", stored.TotalPrice().String())
	repo.AssertNotCalled(t, "Update")
}
