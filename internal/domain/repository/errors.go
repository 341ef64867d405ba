package repository

import "errors"

// Errors returned by every repository implementation. Driver errors that do
// not map onto one of these are wrapped and returned as is.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("foreign key violation")
)
