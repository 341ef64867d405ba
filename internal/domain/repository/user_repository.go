package repository

import (
	"context"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	// Delete removes the user together with all of its favorites.
	Delete(ctx context.Context, id int64) error
}
