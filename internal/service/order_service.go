package service

import (
	"context"

	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/constants"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
)

type IOrderService interface {
	// CreateOrder validates both foreign keys, then, when the user has no
	// open order, creates the order and its single line item inside one
	// transaction. When an open order already exists the call fails with a
	// NotImplemented outcome: accumulation semantics are deliberately
	// unspecified.
	CreateOrder(ctx context.Context, arg *model.CreateOrderModel) (*model.OrderModel, error)
	GetOrder(ctx context.Context, id int64) (*model.OrderModel, error)
	ListOrders(ctx context.Context) ([]model.OrderModel, error)
}

type OrderService struct {
	dbDao       db.IStore
	fkValidator IFKValidator
}

func NewOrderService(dbDao db.IStore, fkValidator IFKValidator) IOrderService {
	if dbDao == nil {
		panic("order service initialization failed: dbDao cannot be nil")
	}
	if fkValidator == nil {
		panic("order service initialization failed: fkValidator cannot be nil")
	}
	return &OrderService{dbDao: dbDao, fkValidator: fkValidator}
}

func (s *OrderService) CreateOrder(ctx context.Context, arg *model.CreateOrderModel) (*model.OrderModel, error) {
	missing, err := s.fkValidator.Validate(ctx, []FKRef{
		{Kind: FKUser, ID: arg.UserID},
		{Kind: FKProduct, ID: arg.ProductID},
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if len(missing) > 0 {
		return nil, apperr.NewList(apperr.BadRequestCode, missing)
	}

	open, err := s.dbDao.ListOpenOrdersByUser(ctx, db.ListOpenOrdersByUserParams{
		OrderStatusID: constants.OrderStatusInProgressID,
		UserID:        arg.UserID,
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if len(open) > 0 {
		return nil, apperr.New(apperr.NotImplementedCode,
			"adding an item to an existing open order is not supported")
	}

	amount := arg.Price * float64(arg.NumberOfItems)

	var result model.OrderModel
	err = s.dbDao.ExecTx(ctx, func(q db.Querier) error {
		order, err := q.CreateOrder(ctx, db.CreateOrderParams{
			UserID:        arg.UserID,
			OrderStatusID: constants.OrderStatusInProgressID,
			SubTotal:      amount,
			Total:         amount,
			Tps:           0,
			Tvq:           0,
		})
		if err != nil {
			return err
		}

		detail, err := q.CreateOrderDetail(ctx, db.CreateOrderDetailParams{
			OrderID:       order.ID,
			ProductID:     arg.ProductID,
			NumberOfItems: arg.NumberOfItems,
			UnitPrice:     arg.Price,
		})
		if err != nil {
			return err
		}

		result = convertRepoOrderToModel(&order)
		result.Details = []model.OrderDetailModel{convertRepoOrderDetailToModel(&detail)}
		return nil
	})
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return &result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*model.OrderModel, error) {
	order, err := s.dbDao.GetOrderByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	details, err := s.dbDao.ListOrderDetailsByOrder(ctx, order.ID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	result := convertRepoOrderToModel(&order)
	for i := range details {
		result.Details = append(result.Details, convertRepoOrderDetailToModel(&details[i]))
	}
	return &result, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.OrderModel, error) {
	orders, err := s.dbDao.ListOrders(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	models := make([]model.OrderModel, 0, len(orders))
	for i := range orders {
		models = append(models, convertRepoOrderToModel(&orders[i]))
	}
	return models, nil
}

func convertRepoOrderToModel(o *db.Order) model.OrderModel {
	return model.OrderModel{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderStatusID: o.OrderStatusID,
		SubTotal:      o.SubTotal,
		Total:         o.Total,
		Tps:           o.Tps,
		Tvq:           o.Tvq,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func convertRepoOrderDetailToModel(d *db.OrderDetail) model.OrderDetailModel {
	return model.OrderDetailModel{
		ID:            d.ID,
		OrderID:       d.OrderID,
		ProductID:     d.ProductID,
		NumberOfItems: d.NumberOfItems,
		UnitPrice:     d.UnitPrice,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
