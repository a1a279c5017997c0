package service

import (
	"context"
	"testing"

	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/constants"
	"github.com/jonier/api-store/internal/model"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*fakeStore, IOrderService) {
	t.Helper()
	store := newFakeStore()
	return store, NewOrderService(store, NewFKValidator(store))
}

func TestCreateOrder(t *testing.T) {
	store, svc := newOrderFixture(t)
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)

	order, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        user.ID,
		ProductID:     product.ID,
		NumberOfItems: 3,
		Price:         15,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, order.UserID)
	require.Equal(t, constants.OrderStatusInProgressID, order.OrderStatusID)
	require.Equal(t, float64(45), order.SubTotal)
	require.Equal(t, float64(45), order.Total)
	require.Zero(t, order.Tps)
	require.Zero(t, order.Tvq)

	require.Len(t, order.Details, 1)
	detail := order.Details[0]
	require.Equal(t, order.ID, detail.OrderID)
	require.Equal(t, product.ID, detail.ProductID)
	require.Equal(t, int32(3), detail.NumberOfItems)
	require.Equal(t, float64(15), detail.UnitPrice)
}

func TestCreateOrderMissingUser(t *testing.T) {
	store, svc := newOrderFixture(t)
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)

	_, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        999,
		ProductID:     product.ID,
		NumberOfItems: 2,
		Price:         10,
	})
	require.Error(t, err)
	require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))
	require.Equal(t, []string{"The user 999 does not exist"}, apperr.MessagesOf(err))
}

func TestCreateOrderMissingBothRefs(t *testing.T) {
	_, svc := newOrderFixture(t)

	_, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        999,
		ProductID:     888,
		NumberOfItems: 1,
		Price:         5,
	})
	require.Error(t, err)
	require.Equal(t, apperr.BadRequestCode, apperr.CodeOf(err))
	require.Equal(t, []string{
		"The user 999 does not exist",
		"The product 888 does not exist",
	}, apperr.MessagesOf(err))
}

func TestCreateOrderWithOpenOrder(t *testing.T) {
	store, svc := newOrderFixture(t)
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)

	_, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        user.ID,
		ProductID:     product.ID,
		NumberOfItems: 1,
		Price:         10,
	})
	require.NoError(t, err)

	before := store.mutationCount
	_, err = svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        user.ID,
		ProductID:     product.ID,
		NumberOfItems: 2,
		Price:         10,
	})
	require.Error(t, err)
	require.Equal(t, apperr.NotImplementedCode, apperr.CodeOf(err))
	require.Equal(t, before, store.mutationCount)
}

func TestCreateOrderOpenOrderOfOtherUser(t *testing.T) {
	store, svc := newOrderFixture(t)
	alice := store.seedUser("alice@gmail.com", "alice4321")
	bob := store.seedUser("bob@gmail.com", "bob543210")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(alice.ID, kind.ID)

	_, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        alice.ID,
		ProductID:     product.ID,
		NumberOfItems: 1,
		Price:         10,
	})
	require.NoError(t, err)

	// Alice's open order must not block Bob.
	order, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        bob.ID,
		ProductID:     product.ID,
		NumberOfItems: 2,
		Price:         10,
	})
	require.NoError(t, err)
	require.Equal(t, bob.ID, order.UserID)
}

func TestGetOrder(t *testing.T) {
	store, svc := newOrderFixture(t)
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)

	created, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        user.ID,
		ProductID:     product.ID,
		NumberOfItems: 2,
		Price:         7.5,
	})
	require.NoError(t, err)

	got, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, float64(15), got.Total)
	require.Len(t, got.Details, 1)
}

func TestGetOrderNotFound(t *testing.T) {
	_, svc := newOrderFixture(t)

	_, err := svc.GetOrder(context.Background(), 42)
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundCode, apperr.CodeOf(err))
}

func TestListOrders(t *testing.T) {
	store, svc := newOrderFixture(t)
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)

	_, err := svc.CreateOrder(context.Background(), &model.CreateOrderModel{
		UserID:        user.ID,
		ProductID:     product.ID,
		NumberOfItems: 1,
		Price:         10,
	})
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
}
