package db

import (
	"context"
)

const createUser = `
INSERT INTO users (email, user_name, first_name, last_name, address, telephone, password_hash, photo)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
`

type CreateUserParams struct {
	Email        string
	UserName     string
	FirstName    string
	LastName     string
	Address      string
	Telephone    string
	PasswordHash string
	Photo        *string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Email,
		arg.UserName,
		arg.FirstName,
		arg.LastName,
		arg.Address,
		arg.Telephone,
		arg.PasswordHash,
		arg.Photo,
	)
	return scanUser(row)
}

const getUserByID = `
SELECT id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByID, id))
}

const getUserByUniqueKeys = `
SELECT id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
FROM users
WHERE email = $1 AND user_name = $2 AND telephone = $3
`

type GetUserByUniqueKeysParams struct {
	Email     string
	UserName  string
	Telephone string
}

// GetUserByUniqueKeys is the find-or-create lookup: the same triple the
// original keyed idempotent creation on.
func (q *Queries) GetUserByUniqueKeys(ctx context.Context, arg GetUserByUniqueKeysParams) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByUniqueKeys, arg.Email, arg.UserName, arg.Telephone))
}

const getUserByIdentity = `
SELECT id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
FROM users
WHERE email = $1 OR user_name = $1
`

// GetUserByIdentity resolves the login identity, which may be either the
// email or the user name.
func (q *Queries) GetUserByIdentity(ctx context.Context, identity string) (User, error) {
	return scanUser(q.db.QueryRow(ctx, getUserByIdentity, identity))
}

const listUsers = `
SELECT id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
FROM users
ORDER BY id
`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const updateUser = `
UPDATE users
SET email = $2,
    user_name = $3,
    first_name = $4,
    last_name = $5,
    address = $6,
    telephone = $7,
    password_hash = $8,
    photo = $9,
    active = $10,
    updated_at = now()
WHERE id = $1
RETURNING id, email, user_name, first_name, last_name, address, telephone, password_hash, photo, active, created_at, updated_at
`

type UpdateUserParams struct {
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
}

// UpdateUser overwrites every mutable field and refreshes updated_at.
func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser,
		arg.ID,
		arg.Email,
		arg.UserName,
		arg.FirstName,
		arg.LastName,
		arg.Address,
		arg.Telephone,
		arg.PasswordHash,
		arg.Photo,
		arg.Active,
	)
	return scanUser(row)
}

const deleteUser = `
DELETE FROM users WHERE id = $1
`

func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteUser, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.UserName,
		&u.FirstName,
		&u.LastName,
		&u.Address,
		&u.Telephone,
		&u.PasswordHash,
		&u.Photo,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
