package model

import "time"

// OrderStatusModel is the lookup table row. Seeded statuses:
// 1 IN PROGRESS, 2 ACCEPTED, 3 CANCELLED.
type OrderStatusModel struct {
	ID        int64
	Title     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateOrderStatusResult struct {
	Status  OrderStatusModel
	Created bool
}

// OrderStatusSeedModel pins a seeded status to its well-known id; the order
// workflow depends on id 1 meaning IN PROGRESS.
type OrderStatusSeedModel struct {
	ID    int64
	Title string
}

type OrderModel struct {
	ID            int64
	UserID        int64
	OrderStatusID int64
	SubTotal      float64
	Total         float64
	Tps           float64
	Tvq           float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Details       []OrderDetailModel
}

type OrderDetailModel struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	NumberOfItems int32
	UnitPrice     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateOrderModel is the single-path order workflow input: one product, one
// quantity, one unit price.
type CreateOrderModel struct {
	UserID        int64
	ProductID     int64
	NumberOfItems int32
	Price         float64
}

type LoginResponseModel struct {
	AccessToken string
	User        UserModel
}
