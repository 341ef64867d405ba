// Package identity decides which user a request acts on behalf of.
package identity

import (
	"errors"
	"net/http"
)

// ErrUnresolved is returned when a request carries no usable identity.
var ErrUnresolved = errors.New("identity: user not resolved")

// Resolver resolves the acting user id of a request.
type Resolver interface {
	UserID(r *http.Request) (int64, error)
}

// Fixed resolves every request to the same user. It stands in for
// authentication, which this service does not implement.
type Fixed int64

func (f Fixed) UserID(*http.Request) (int64, error) {
	if f <= 0 {
		return 0, ErrUnresolved
	}
	return int64(f), nil
}
