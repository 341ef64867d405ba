package repository

import (
	"context"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

// PlanetRepository defines the interface for planet persistence.
type PlanetRepository interface {
	List(ctx context.Context) ([]entity.Planet, error)
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Planet, error)
	GetByID(ctx context.Context, id int64) (*entity.Planet, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, p *entity.Planet) error
	Update(ctx context.Context, p *entity.Planet) error
	Delete(ctx context.Context, id int64) error
}
