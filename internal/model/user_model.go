package model

import "time"

type UserModel struct {
	ID           int64
	Email        string
	UserName     string
	FirstName    string
	LastName     string
	Address      string
	Telephone    string
	HashPassword string
	Photo        *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserModel carries the plaintext password; it is hashed before any row
// is written and never stored on UserModel.
type CreateUserModel struct {
	Email     string
	UserName  string
	FirstName string
	LastName  string
	Address   string
	Telephone string
	Password  string
	Photo     *string
}

type UpdateUserModel struct {
	ID        int64
	Email     string
	UserName  string
	FirstName string
	LastName  string
	Address   string
	Telephone string
	Password  string
	Photo     *string
	Active    bool
}

// CreateUserResult reports whether find-or-create actually inserted a row.
type CreateUserResult struct {
	User    UserModel
	Created bool
}
