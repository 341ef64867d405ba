package repository

import (
	"context"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

// CharacterRepository defines the interface for character persistence.
type CharacterRepository interface {
	List(ctx context.Context) ([]entity.Character, error)
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Character, error)
	ListByHomeworld(ctx context.Context, planetID int64) ([]entity.Character, error)
	GetByID(ctx context.Context, id int64) (*entity.Character, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, c *entity.Character) error
	Update(ctx context.Context, c *entity.Character) error
	Delete(ctx context.Context, id int64) error
}
