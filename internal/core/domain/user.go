package domain

import (
	"errors"
	"time"
)

var ErrEmailExists = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models a registered account. PasswordHash never crosses the API
// boundary: the json tag strips it from every serialized response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the caller resolved from a verified bearer token. It carries no
// credentials and is attached to the request context by the auth middleware.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
