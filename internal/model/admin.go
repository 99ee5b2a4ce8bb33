package model

import "time"

// AdminCredentials holds a stored administrator login. PasswordHash is a
// bcrypt hash, never the plaintext password.
type AdminCredentials struct {
	ID           int64     `json:"-" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// LoginRequest represents the administrator login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
