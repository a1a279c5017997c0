package db

import "time"

type User struct {
	ID           int64
	Email        string
	UserName     string
	FirstName    string
	LastName     string
	Address      string
	Telephone    string
	PasswordHash string
	Photo        *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type KindOfProduct struct {
	ID        int64
	Title     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID              int64
	Title           string
	Description     string
	Price           float64
	ImageURL        string
	Active          bool
	UserID          int64
	KindOfProductID int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatus struct {
	ID        int64
	Title     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID            int64
	UserID        int64
	OrderStatusID int64
	SubTotal      float64
	Total         float64
	Tps           float64
	Tvq           float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderDetail struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	NumberOfItems int32
	UnitPrice     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
