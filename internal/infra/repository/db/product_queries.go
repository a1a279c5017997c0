package db

import "context"

const createProduct = `
INSERT INTO products (title, description, price, image_url, user_id, kind_of_product_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, title, description, price, image_url, active, user_id, kind_of_product_id, created_at, updated_at
`

type CreateProductParams struct {
	Title           string
	Description     string
	Price           float64
	ImageURL        string
	UserID          int64
	KindOfProductID int64
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.ImageURL,
		arg.UserID,
		arg.KindOfProductID,
	)
	return scanProduct(row)
}

const getProductByID = `
SELECT id, title, description, price, image_url, active, user_id, kind_of_product_id, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id int64) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, getProductByID, id))
}

const listProducts = `
SELECT id, title, description, price, image_url, active, user_id, kind_of_product_id, created_at, updated_at
FROM products
ORDER BY id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const updateProduct = `
UPDATE products
SET title = $2,
    description = $3,
    price = $4,
    image_url = $5,
    active = $6,
    user_id = $7,
    kind_of_product_id = $8,
    updated_at = now()
WHERE id = $1
RETURNING id, title, description, price, image_url, active, user_id, kind_of_product_id, created_at, updated_at
`

type UpdateProductParams struct {
	ID              int64
	Title           string
	Description     string
	Price           float64
	ImageURL        string
	Active          bool
	UserID          int64
	KindOfProductID int64
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Price,
		arg.ImageURL,
		arg.Active,
		arg.UserID,
		arg.KindOfProductID,
	)
	return scanProduct(row)
}

const deleteProduct = `
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteProduct, id)
	return err
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Active,
		&p.UserID,
		&p.KindOfProductID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
