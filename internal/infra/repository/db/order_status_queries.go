package db

import "context"

const createOrderStatus = `
INSERT INTO order_statuses (title, active)
VALUES ($1, $2)
RETURNING id, title, active, created_at, updated_at
`

type CreateOrderStatusParams struct {
	Title  string
	Active bool
}

func (q *Queries) CreateOrderStatus(ctx context.Context, arg CreateOrderStatusParams) (OrderStatus, error) {
	return scanOrderStatus(q.db.QueryRow(ctx, createOrderStatus, arg.Title, arg.Active))
}

const createOrderStatusWithID = `
INSERT INTO order_statuses (id, title, active)
VALUES ($1, $2, $3)
RETURNING id, title, active, created_at, updated_at
`

type CreateOrderStatusWithIDParams struct {
	ID     int64
	Title  string
	Active bool
}

// CreateOrderStatusWithID inserts a row under a fixed id. Seeded statuses must
// keep their well-known ids across re-seeds, so the serial sequence is not
// consulted; call SyncOrderStatusIDSeq afterwards.
func (q *Queries) CreateOrderStatusWithID(ctx context.Context, arg CreateOrderStatusWithIDParams) (OrderStatus, error) {
	return scanOrderStatus(q.db.QueryRow(ctx, createOrderStatusWithID, arg.ID, arg.Title, arg.Active))
}

const syncOrderStatusIDSeq = `
SELECT setval(pg_get_serial_sequence('order_statuses', 'id'), (SELECT COALESCE(MAX(id), 1) FROM order_statuses))
`

// SyncOrderStatusIDSeq bumps the id sequence past any explicitly inserted ids
// so later serial inserts do not collide with seeded rows.
func (q *Queries) SyncOrderStatusIDSeq(ctx context.Context) error {
	_, err := q.db.Exec(ctx, syncOrderStatusIDSeq)
	return err
}

const getOrderStatusByID = `
SELECT id, title, active, created_at, updated_at
FROM order_statuses
WHERE id = $1
`

func (q *Queries) GetOrderStatusByID(ctx context.Context, id int64) (OrderStatus, error) {
	return scanOrderStatus(q.db.QueryRow(ctx, getOrderStatusByID, id))
}

const getOrderStatusByTitle = `
SELECT id, title, active, created_at, updated_at
FROM order_statuses
WHERE title = $1
`

func (q *Queries) GetOrderStatusByTitle(ctx context.Context, title string) (OrderStatus, error) {
	return scanOrderStatus(q.db.QueryRow(ctx, getOrderStatusByTitle, title))
}

const listOrderStatuses = `
SELECT id, title, active, created_at, updated_at
FROM order_statuses
ORDER BY id
`

func (q *Queries) ListOrderStatuses(ctx context.Context) ([]OrderStatus, error) {
	rows, err := q.db.Query(ctx, listOrderStatuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []OrderStatus
	for rows.Next() {
		s, err := scanOrderStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

const updateOrderStatus = `
UPDATE order_statuses
SET title = $2,
    active = $3,
    updated_at = now()
WHERE id = $1
RETURNING id, title, active, created_at, updated_at
`

type UpdateOrderStatusParams struct {
	ID     int64
	Title  string
	Active bool
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (OrderStatus, error) {
	return scanOrderStatus(q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Title, arg.Active))
}

const deleteOrderStatus = `
DELETE FROM order_statuses WHERE id = $1
`

func (q *Queries) DeleteOrderStatus(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteOrderStatus, id)
	return err
}

func scanOrderStatus(row rowScanner) (OrderStatus, error) {
	var s OrderStatus
	err := row.Scan(&s.ID, &s.Title, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
