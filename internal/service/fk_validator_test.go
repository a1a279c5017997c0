package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFKValidator(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("jonier@gmail.com", "jonier123")
	kind := store.seedKind("Dessert")
	product := store.seedProduct(user.ID, kind.ID)
	validator := NewFKValidator(store)

	missing, err := validator.Validate(context.Background(), []FKRef{
		{Kind: FKUser, ID: user.ID},
		{Kind: FKProduct, ID: product.ID},
		{Kind: FKKindOfProduct, ID: kind.ID},
	})
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestFKValidatorReportsEveryMissingRef(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("jonier@gmail.com", "jonier123")
	validator := NewFKValidator(store)

	missing, err := validator.Validate(context.Background(), []FKRef{
		{Kind: FKUser, ID: user.ID},
		{Kind: FKProduct, ID: 77},
		{Kind: FKKindOfProduct, ID: 88},
		{Kind: FKOrderStatus, ID: 99},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"The product 77 does not exist",
		"The kind of product 88 does not exist",
		"The order status 99 does not exist",
	}, missing)
}

func TestFKValidatorUnknownKind(t *testing.T) {
	validator := NewFKValidator(newFakeStore())

	_, err := validator.Validate(context.Background(), []FKRef{{Kind: "warehouse", ID: 1}})
	require.Error(t, err)
}
