package repository

import (
	"context"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

// FavoriteRepository stores the user/character and user/planet join rows.
// Favorites are never updated, only created and deleted.
type FavoriteRepository interface {
	ListCharactersByUser(ctx context.Context, userID int64) ([]entity.FavoriteCharacter, error)
	FindCharacter(ctx context.Context, userID, characterID int64) (*entity.FavoriteCharacter, error)
	CreateCharacter(ctx context.Context, f *entity.FavoriteCharacter) error
	DeleteCharacter(ctx context.Context, id int64) error

	ListPlanetsByUser(ctx context.Context, userID int64) ([]entity.FavoritePlanet, error)
	FindPlanet(ctx context.Context, userID, planetID int64) (*entity.FavoritePlanet, error)
	CreatePlanet(ctx context.Context, f *entity.FavoritePlanet) error
	DeletePlanet(ctx context.Context, id int64) error
}
