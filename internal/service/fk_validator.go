package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonier/api-store/internal/infra/repository/db"
)

// Entity kinds a foreign key can point at. The strings appear verbatim in
// client-facing messages.
const (
	FKUser          = "user"
	FKProduct       = "product"
	FKKindOfProduct = "kind of product"
	FKOrderStatus   = "order status"
)

type FKRef struct {
	Kind string
	ID   int64
}

type IFKValidator interface {
	// Validate fetches every referenced row by primary key and returns one
	// message per missing reference, in input order. An empty slice means
	// every reference exists. No side effects.
	Validate(ctx context.Context, refs []FKRef) ([]string, error)
}

type FKValidator struct {
	dbDao db.Querier
}

func NewFKValidator(dbDao db.Querier) IFKValidator {
	if dbDao == nil {
		panic("fk validator initialization failed: dbDao cannot be nil")
	}
	return &FKValidator{dbDao: dbDao}
}

func (v *FKValidator) Validate(ctx context.Context, refs []FKRef) ([]string, error) {
	var missing []string
	for _, ref := range refs {
		err := v.lookup(ctx, ref)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				missing = append(missing, fmt.Sprintf("The %s %d does not exist", ref.Kind, ref.ID))
				continue
			}
			return nil, err
		}
	}
	return missing, nil
}

func (v *FKValidator) lookup(ctx context.Context, ref FKRef) error {
	var err error
	switch ref.Kind {
	case FKUser:
		_, err = v.dbDao.GetUserByID(ctx, ref.ID)
	case FKProduct:
		_, err = v.dbDao.GetProductByID(ctx, ref.ID)
	case FKKindOfProduct:
		_, err = v.dbDao.GetKindOfProductByID(ctx, ref.ID)
	case FKOrderStatus:
		_, err = v.dbDao.GetOrderStatusByID(ctx, ref.ID)
	default:
		err = fmt.Errorf("unknown foreign key kind %q", ref.Kind)
	}
	return err
}
