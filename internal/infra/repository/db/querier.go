package db

import "context"

// Querier is every query the data layer exposes. Services depend on this (or
// on IStore) so tests can run against an in-memory implementation.
type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByUniqueKeys(ctx context.Context, arg GetUserByUniqueKeysParams) (User, error)
	GetUserByIdentity(ctx context.Context, identity string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateKindOfProduct(ctx context.Context, arg CreateKindOfProductParams) (KindOfProduct, error)
	GetKindOfProductByID(ctx context.Context, id int64) (KindOfProduct, error)
	GetKindOfProductByTitle(ctx context.Context, title string) (KindOfProduct, error)
	ListKindOfProducts(ctx context.Context) ([]KindOfProduct, error)
	UpdateKindOfProduct(ctx context.Context, arg UpdateKindOfProductParams) (KindOfProduct, error)
	DeleteKindOfProduct(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProductByID(ctx context.Context, id int64) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateOrderStatus(ctx context.Context, arg CreateOrderStatusParams) (OrderStatus, error)
	CreateOrderStatusWithID(ctx context.Context, arg CreateOrderStatusWithIDParams) (OrderStatus, error)
	SyncOrderStatusIDSeq(ctx context.Context) error
	GetOrderStatusByID(ctx context.Context, id int64) (OrderStatus, error)
	GetOrderStatusByTitle(ctx context.Context, title string) (OrderStatus, error)
	ListOrderStatuses(ctx context.Context) ([]OrderStatus, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (OrderStatus, error)
	DeleteOrderStatus(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrderByID(ctx context.Context, id int64) (Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListOpenOrdersByUser(ctx context.Context, arg ListOpenOrdersByUserParams) ([]Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateOrderDetail(ctx context.Context, arg CreateOrderDetailParams) (OrderDetail, error)
	ListOrderDetailsByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error)
	DeleteOrderDetailsByOrder(ctx context.Context, orderID int64) error
}

var _ Querier = (*Queries)(nil)
