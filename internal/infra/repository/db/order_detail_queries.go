package db

import "context"

const createOrderDetail = `
INSERT INTO order_details (order_id, product_id, number_of_items, unit_price)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, product_id, number_of_items, unit_price, created_at, updated_at
`

type CreateOrderDetailParams struct {
	OrderID       int64
	ProductID     int64
	NumberOfItems int32
	UnitPrice     float64
}

func (q *Queries) CreateOrderDetail(ctx context.Context, arg CreateOrderDetailParams) (OrderDetail, error) {
	row := q.db.QueryRow(ctx, createOrderDetail,
		arg.OrderID,
		arg.ProductID,
		arg.NumberOfItems,
		arg.UnitPrice,
	)
	return scanOrderDetail(row)
}

const listOrderDetailsByOrder = `
SELECT id, order_id, product_id, number_of_items, unit_price, created_at, updated_at
FROM order_details
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderDetailsByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error) {
	rows, err := q.db.Query(ctx, listOrderDetailsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []OrderDetail
	for rows.Next() {
		d, err := scanOrderDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

const deleteOrderDetailsByOrder = `
DELETE FROM order_details WHERE order_id = $1
`

func (q *Queries) DeleteOrderDetailsByOrder(ctx context.Context, orderID int64) error {
	_, err := q.db.Exec(ctx, deleteOrderDetailsByOrder, orderID)
	return err
}

func scanOrderDetail(row rowScanner) (OrderDetail, error) {
	var d OrderDetail
	err := row.Scan(
		&d.ID,
		&d.OrderID,
		&d.ProductID,
		&d.NumberOfItems,
		&d.UnitPrice,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
