package db

import "context"

const createOrder = `
INSERT INTO orders (user_id, order_status_id, sub_total, total, tps, tvq)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, order_status_id, sub_total, total, tps, tvq, created_at, updated_at
`

type CreateOrderParams struct {
	UserID        int64
	OrderStatusID int64
	SubTotal      float64
	Total         float64
	Tps           float64
	Tvq           float64
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.UserID,
		arg.OrderStatusID,
		arg.SubTotal,
		arg.Total,
		arg.Tps,
		arg.Tvq,
	)
	return scanOrder(row)
}

const getOrderByID = `
SELECT id, user_id, order_status_id, sub_total, total, tps, tvq, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id int64) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByID, id))
}

const listOrders = `
SELECT id, user_id, order_status_id, sub_total, total, tps, tvq, created_at, updated_at
FROM orders
ORDER BY id
`

func (q *Queries) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const listOpenOrdersByUser = `
SELECT id, user_id, order_status_id, sub_total, total, tps, tvq, created_at, updated_at
FROM orders
WHERE order_status_id = $1 AND user_id = $2
ORDER BY id
`

type ListOpenOrdersByUserParams struct {
	OrderStatusID int64
	UserID        int64
}

// ListOpenOrdersByUser scopes the open-order lookup by user.
func (q *Queries) ListOpenOrdersByUser(ctx context.Context, arg ListOpenOrdersByUserParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOpenOrdersByUser, arg.OrderStatusID, arg.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const deleteOrder = `
DELETE FROM orders WHERE id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteOrder, id)
	return err
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.OrderStatusID,
		&o.SubTotal,
		&o.Total,
		&o.Tps,
		&o.Tvq,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
