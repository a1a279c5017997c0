package dto

import "time"

type CreateOrderStatusDTO struct {
	Title  string `json:"title"`
	Active *bool  `json:"active,omitempty"`
}

func (d *CreateOrderStatusDTO) Validate() []string {
	if d.Title == "" {
		return []string{missingFieldsMessage([]string{"title"})}
	}
	return nil
}

type UpdateOrderStatusDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

func (d *UpdateOrderStatusDTO) Validate() []string {
	var missing []string
	if d.ID == 0 {
		missing = append(missing, "id")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}
	return nil
}

type OrderStatusDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateOrderDTO struct {
	UserID        int64   `json:"userId"`
	ProductID     int64   `json:"productId"`
	NumberOfItems int32   `json:"numberOfItems"`
	Price         float64 `json:"price"`
}

func (d *CreateOrderDTO) Validate() []string {
	var missing []string
	if d.UserID == 0 {
		missing = append(missing, "userId")
	}
	if d.ProductID == 0 {
		missing = append(missing, "productId")
	}
	if d.NumberOfItems == 0 {
		missing = append(missing, "numberOfItems")
	}
	if d.Price == 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}

	var msgs []string
	if d.NumberOfItems < 0 {
		msgs = append(msgs, "The numberOfItems can not be negative")
	}
	if d.Price < 0 {
		msgs = append(msgs, "The price can not be negative")
	}
	return msgs
}

type OrderDTO struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"userId"`
	OrderStatusID int64            `json:"orderStatusId"`
	SubTotal      float64          `json:"subTotal"`
	Total         float64          `json:"total"`
	Tps           float64          `json:"tps"`
	Tvq           float64          `json:"tvq"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	Details       []OrderDetailDTO `json:"orderDetails,omitempty"`
}

type OrderDetailDTO struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"orderId"`
	ProductID     int64     `json:"productId"`
	NumberOfItems int32     `json:"numberOfItems"`
	UnitPrice     float64   `json:"unitPrice"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
