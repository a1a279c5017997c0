package db

import "context"

const createKindOfProduct = `
INSERT INTO kind_of_products (title, active)
VALUES ($1, $2)
RETURNING id, title, active, created_at, updated_at
`

type CreateKindOfProductParams struct {
	Title  string
	Active bool
}

func (q *Queries) CreateKindOfProduct(ctx context.Context, arg CreateKindOfProductParams) (KindOfProduct, error) {
	return scanKindOfProduct(q.db.QueryRow(ctx, createKindOfProduct, arg.Title, arg.Active))
}

const getKindOfProductByID = `
SELECT id, title, active, created_at, updated_at
FROM kind_of_products
WHERE id = $1
`

func (q *Queries) GetKindOfProductByID(ctx context.Context, id int64) (KindOfProduct, error) {
	return scanKindOfProduct(q.db.QueryRow(ctx, getKindOfProductByID, id))
}

const getKindOfProductByTitle = `
SELECT id, title, active, created_at, updated_at
FROM kind_of_products
WHERE title = $1
`

func (q *Queries) GetKindOfProductByTitle(ctx context.Context, title string) (KindOfProduct, error) {
	return scanKindOfProduct(q.db.QueryRow(ctx, getKindOfProductByTitle, title))
}

const listKindOfProducts = `
SELECT id, title, active, created_at, updated_at
FROM kind_of_products
ORDER BY id
`

func (q *Queries) ListKindOfProducts(ctx context.Context) ([]KindOfProduct, error) {
	rows, err := q.db.Query(ctx, listKindOfProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kinds []KindOfProduct
	for rows.Next() {
		k, err := scanKindOfProduct(rows)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, rows.Err()
}

const updateKindOfProduct = `
UPDATE kind_of_products
SET title = $2,
    active = $3,
    updated_at = now()
WHERE id = $1
RETURNING id, title, active, created_at, updated_at
`

type UpdateKindOfProductParams struct {
	ID     int64
	Title  string
	Active bool
}

func (q *Queries) UpdateKindOfProduct(ctx context.Context, arg UpdateKindOfProductParams) (KindOfProduct, error) {
	return scanKindOfProduct(q.db.QueryRow(ctx, updateKindOfProduct, arg.ID, arg.Title, arg.Active))
}

const deleteKindOfProduct = `
DELETE FROM kind_of_products WHERE id = $1
`

func (q *Queries) DeleteKindOfProduct(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteKindOfProduct, id)
	return err
}

func scanKindOfProduct(row rowScanner) (KindOfProduct, error) {
	var k KindOfProduct
	err := row.Scan(&k.ID, &k.Title, &k.Active, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}
