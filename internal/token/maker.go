package token

import (
	"errors"
	"time"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// Payload is what a signed token carries: enough to identify the caller
// without a database round trip.
type Payload struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func NewPayload(userID int64, email string, duration time.Duration) *Payload {
	now := time.Now().UTC()
	return &Payload{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

// Maker signs and verifies access tokens.
type Maker interface {
	CreateToken(userID int64, email string, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
