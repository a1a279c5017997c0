package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T, store *Store) User {
	t.Helper()
	suffix := time.Now().UnixNano()
	user, err := store.CreateUser(context.Background(), CreateUserParams{
		Email:        fmt.Sprintf("user%d@example.com", suffix),
		UserName:     fmt.Sprintf("user%d", suffix),
		FirstName:    "Test",
		LastName:     "User",
		Address:      "1 Test Street",
		Telephone:    fmt.Sprintf("%d", suffix%10000000000),
		PasswordHash: "notahash",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.True(t, user.Active)
	return user
}

func TestCreateAndGetUser(t *testing.T) {
	store := requireTestStore(t)

	created := createRandomUser(t, store)
	t.Cleanup(func() { _ = store.DeleteUser(context.Background(), created.ID) })

	got, err := store.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)
	require.Equal(t, created.UserName, got.UserName)

	byIdentity, err := store.GetUserByIdentity(context.Background(), created.Email)
	require.NoError(t, err)
	require.Equal(t, created.ID, byIdentity.ID)
}

func TestGetUserByIDNoRows(t *testing.T) {
	store := requireTestStore(t)

	_, err := store.GetUserByID(context.Background(), -1)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestExecTxRollback(t *testing.T) {
	store := requireTestStore(t)

	user := createRandomUser(t, store)
	t.Cleanup(func() { _ = store.DeleteUser(context.Background(), user.ID) })

	kind, err := store.CreateKindOfProduct(context.Background(), CreateKindOfProductParams{
		Title:  fmt.Sprintf("kind%d", time.Now().UnixNano()),
		Active: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.DeleteKindOfProduct(context.Background(), kind.ID) })

	boom := errors.New("boom")
	var orderID int64
	err = store.ExecTx(context.Background(), func(q Querier) error {
		order, err := q.CreateOrder(context.Background(), CreateOrderParams{
			UserID:        user.ID,
			OrderStatusID: 1,
			SubTotal:      45,
			Total:         45,
		})
		if err != nil {
			return err
		}
		orderID = order.ID
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The order written inside the failed transaction must not survive.
	_, err = store.GetOrderByID(context.Background(), orderID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestOrderWithDetailTx(t *testing.T) {
	store := requireTestStore(t)

	user := createRandomUser(t, store)
	t.Cleanup(func() { _ = store.DeleteUser(context.Background(), user.ID) })

	kind, err := store.CreateKindOfProduct(context.Background(), CreateKindOfProductParams{
		Title:  fmt.Sprintf("kind%d", time.Now().UnixNano()),
		Active: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.DeleteKindOfProduct(context.Background(), kind.ID) })

	product, err := store.CreateProduct(context.Background(), CreateProductParams{
		Title:           "Cupcake",
		Description:     "Vanilla cupcake",
		Price:           15,
		ImageURL:        "http://img/cupcake.png",
		UserID:          user.ID,
		KindOfProductID: kind.ID,
	})
	require.NoError(t, err)

	var order Order
	err = store.ExecTx(context.Background(), func(q Querier) error {
		var err error
		order, err = q.CreateOrder(context.Background(), CreateOrderParams{
			UserID:        user.ID,
			OrderStatusID: 1,
			SubTotal:      45,
			Total:         45,
		})
		if err != nil {
			return err
		}
		_, err = q.CreateOrderDetail(context.Background(), CreateOrderDetailParams{
			OrderID:       order.ID,
			ProductID:     product.ID,
			NumberOfItems: 3,
			UnitPrice:     15,
		})
		return err
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.DeleteOrder(context.Background(), order.ID) })

	details, err := store.ListOrderDetailsByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, int32(3), details[0].NumberOfItems)

	open, err := store.ListOpenOrdersByUser(context.Background(), ListOpenOrdersByUserParams{
		OrderStatusID: 1,
		UserID:        user.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, open)
}
