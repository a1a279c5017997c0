package model

import "time"

type ProductModel struct {
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

type CreateProductModel struct {
	Title           string
	Description     string
	Price           float64
	ImageURL        string
	UserID          int64
	KindOfProductID int64
}

type UpdateProductModel struct {
	ID              int64
	Title           string
	Description     string
	Price           float64
	ImageURL        string
	Active          bool
	UserID          int64
	KindOfProductID int64
}

type KindOfProductModel struct {
	ID        int64
	Title     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateKindOfProductResult struct {
	Kind    KindOfProductModel
	Created bool
}
