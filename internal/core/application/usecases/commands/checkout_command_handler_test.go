package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCommandHandler_Handle_PricesLinesFromCatalog(t *testing.T) {
	// Given
	ctx := t.Context()
	bread := publishedGood(t, 350)
	bun := publishedGood(t, 120)

	shoppingCart, err := cart.CreateWithItem(kernel.NewUUID(), bread.ID(), 2)
	require.NoError(t, err)
	require.NoError(t, shoppingCart.AddItem(bun.ID(), 3))
	shoppingCart.MarkCommitted()

	chosen, err := location.Choose(kernel.NewUUID(), kernel.MustGeoLocation(49.2, 16.61))
	require.NoError(t, err)
	chosen.MarkCommitted()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(shoppingCart.ID(), orderID, chosen.ID())
	require.NoError(t, err)

	var saved cart.OrderCreatedFromCart
	carts := new(MockCartRepository)
	carts.On("Get", ctx, shoppingCart.ID()).Return(shoppingCart, nil)
	carts.On("Save", ctx, shoppingCart).Run(func(args mock.Arguments) {
		changes := args.Get(1).(*cart.ShoppingCart).Changes()
		saved = changes[len(changes)-1].(cart.OrderCreatedFromCart)
	}).Return(nil).Once()
	goods := new(MockBakedGoodRepository)
	goods.On("Get", ctx, bread.ID()).Return(bread, nil)
	goods.On("Get", ctx, bun.ID()).Return(bun, nil)
	locations := new(MockChosenLocationRepository)
	locations.On("Get", ctx, chosen.ID()).Return(chosen, nil)

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(carts)
	uow.On("BakedGoodRepository").Return(goods)
	uow.On("ChosenLocationRepository").Return(locations)
	uow.On("Commit", ctx).Return(nil).Once()

	// When
	h := commands.NewCheckoutCommandHandler(cartFactory(uow))
	err = h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.True(t, saved.OrderID.IsEqual(orderID))
	require.Len(t, saved.Items, 2)
	assert.Equal(t, kernel.Money(700), saved.Items[0].TotalPrice)
	assert.Equal(t, kernel.Money(360), saved.Items[1].TotalPrice)
	assert.Equal(t, 5, saved.ItemCount())
	assert.InDelta(t, 49.2, saved.CustomerLat, 1e-9)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	// Given
	ctx := t.Context()
	goodID := kernel.NewUUID()
	shoppingCart, _ := cart.CreateWithItem(kernel.NewUUID(), goodID, 1)
	require.NoError(t, shoppingCart.AdjustQuantity(goodID, -1))
	shoppingCart.MarkCommitted()
	chosen, _ := location.Choose(kernel.NewUUID(), kernel.MustGeoLocation(49.2, 16.61))
	cmd, _ := commands.NewCheckoutCommand(shoppingCart.ID(), kernel.NewUUID(), chosen.ID())

	carts := new(MockCartRepository)
	carts.On("Get", ctx, shoppingCart.ID()).Return(shoppingCart, nil)
	locations := new(MockChosenLocationRepository)
	locations.On("Get", ctx, chosen.ID()).Return(chosen, nil)
	goods := new(MockBakedGoodRepository)

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(carts)
	uow.On("BakedGoodRepository").Return(goods)
	uow.On("ChosenLocationRepository").Return(locations)

	// When
	h := commands.NewCheckoutCommandHandler(cartFactory(uow))
	err := h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, cart.ErrCartIsEmpty)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
