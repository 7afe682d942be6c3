package commands_test

import (
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func publishedGood(t *testing.T, price kernel.Money) *bakedgood.BakedGood {
	t.Helper()
	g, err := bakedgood.Publish(kernel.NewUUID(), "Rye bread", "", price, 10, kernel.MustGeoLocation(49.19, 16.60))
	require.NoError(t, err)
	g.MarkCommitted()
	return g
}

func cartFactory(uow *MockUoW) *MockUoWFactory[commands.CartUoW] {
	f := new(MockUoWFactory[commands.CartUoW])
	f.On("Create").Return(uow)
	return f
}

func TestCartCommandHandler_HandleAdd_CreatesCartOnFirstItem(t *testing.T) {
	// Given
	ctx := t.Context()
	good := publishedGood(t, 350)
	cartID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(cartID, good.ID(), 2)
	require.NoError(t, err)

	goods := new(MockBakedGoodRepository)
	goods.On("Get", ctx, good.ID()).Return(good, nil).Once()
	carts := new(MockCartRepository)
	carts.On("Get", ctx, cartID).Return(nil, errs.NewObjectNotFoundError("cartId", cartID)).Once()
	carts.On("Save", ctx, mock.MatchedBy(func(c *cart.ShoppingCart) bool {
		q, ok := c.Quantity(good.ID())
		return c.ID().IsEqual(cartID) && ok && q == 2
	})).Return(nil).Once()

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BakedGoodRepository").Return(goods)
	uow.On("CartRepository").Return(carts)
	uow.On("Commit", ctx).Return(nil).Once()

	// When
	h := commands.NewCartCommandHandler(cartFactory(uow))
	err = h.HandleAdd(ctx, cmd)

	// Then
	require.NoError(t, err)
	goods.AssertExpectations(t)
	carts.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCartCommandHandler_HandleAdd_MergesIntoExistingCart(t *testing.T) {
	// Given
	ctx := t.Context()
	good := publishedGood(t, 350)
	existing, err := cart.CreateWithItem(kernel.NewUUID(), good.ID(), 1)
	require.NoError(t, err)
	existing.MarkCommitted()
	cmd, _ := commands.NewAddCartItemCommand(existing.ID(), good.ID(), 3)

	goods := new(MockBakedGoodRepository)
	goods.On("Get", ctx, good.ID()).Return(good, nil)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, existing.ID()).Return(existing, nil)
	carts.On("Save", ctx, existing).Return(nil).Once()

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("BakedGoodRepository").Return(goods)
	uow.On("CartRepository").Return(carts)
	uow.On("Commit", ctx).Return(nil).Once()

	// When
	h := commands.NewCartCommandHandler(cartFactory(uow))
	err = h.HandleAdd(ctx, cmd)

	// Then
	require.NoError(t, err)
	q, _ := existing.Quantity(good.ID())
	assert.Equal(t, 4, q)
	carts.AssertExpectations(t)
}

func TestCartCommandHandler_HandleAdd_UnknownBakedGood(t *testing.T) {
	// Given
	ctx := t.Context()
	goodID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(kernel.NewUUID(), goodID, 1)

	goods := new(MockBakedGoodRepository)
	goods.On("Get", ctx, goodID).Return(nil, errs.NewObjectNotFoundError("bakedGoodsId", goodID))

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("BakedGoodRepository").Return(goods)

	// When
	h := commands.NewCartCommandHandler(cartFactory(uow))
	err := h.HandleAdd(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "CartRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCartCommandHandler_HandleSetQuantity_NoOpDoesNotCommit(t *testing.T) {
	// Given
	ctx := t.Context()
	existing, _ := cart.CreateWithItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	existing.MarkCommitted()
	cmd, _ := commands.NewSetCartItemQuantityCommand(existing.ID(), kernel.NewUUID(), 5)

	carts := new(MockCartRepository)
	carts.On("Get", ctx, existing.ID()).Return(existing, nil)

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(carts)

	// When
	h := commands.NewCartCommandHandler(cartFactory(uow))
	err := h.HandleSetQuantity(ctx, cmd)

	// Then
	require.NoError(t, err)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCartCommandHandler_HandleAdjustQuantity_SaveError(t *testing.T) {
	// Given
	ctx := t.Context()
	goodID := kernel.NewUUID()
	existing, _ := cart.CreateWithItem(kernel.NewUUID(), goodID, 2)
	existing.MarkCommitted()
	cmd, _ := commands.NewAdjustCartItemQuantityCommand(existing.ID(), goodID, -5)

	carts := new(MockCartRepository)
	carts.On("Get", ctx, existing.ID()).Return(existing, nil)
	carts.On("Save", ctx, existing).Return(errs.NewVersionIsInvalidErrorWithCause("cart")).Once()

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("CartRepository").Return(carts)

	// When
	h := commands.NewCartCommandHandler(cartFactory(uow))
	err := h.HandleAdjustQuantity(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestCartCommandHandler_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory[commands.CartUoW])
	h := commands.NewCartCommandHandler(factory)

	err := h.HandleRemove(ctx, commands.RemoveCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrRemoveCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCartCommandHandler_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteCartCommand(kernel.NewUUID())
	uow := newUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	err := h.HandleDelete(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "CartRepository")
}

func TestNewAddCartItemCommand_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewSetCartItemQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewSetCartItemQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.NoError(t, err)
}
