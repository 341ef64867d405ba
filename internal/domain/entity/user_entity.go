package entity

import (
	"time"
)

// User is the aggregate root that owns favorites.
// PasswordHash is an opaque bcrypt hash and never leaves the service.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	IsActive     bool      `db:"is_active"`
}
