package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	"github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) ListCharactersByUser(ctx context.Context, userID int64) ([]entity.FavoriteCharacter, error) {
	q := ext(ctx, r.db)
	favs := []entity.FavoriteCharacter{}
	err := sqlx.SelectContext(ctx, q, &favs, q.Rebind(`
		SELECT id, user_id, character_id, created_at
		FROM favorite_characters
		WHERE user_id = ?
		ORDER BY id
	`), userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite characters: %w", err)
	}
	return favs, nil
}

func (r *FavoriteRepository) FindCharacter(ctx context.Context, userID, characterID int64) (*entity.FavoriteCharacter, error) {
	q := ext(ctx, r.db)
	f := &entity.FavoriteCharacter{}
	err := sqlx.GetContext(ctx, q, f, q.Rebind(`
		SELECT id, user_id, character_id, created_at
		FROM favorite_characters
		WHERE user_id = ? AND character_id = ?
	`), userID, characterID)
	if err != nil {
		return nil, classify(err)
	}
	return f, nil
}

func (r *FavoriteRepository) CreateCharacter(ctx context.Context, f *entity.FavoriteCharacter) error {
	q := ext(ctx, r.db)
	f.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	err := sqlx.GetContext(ctx, q, &f.ID, q.Rebind(`
		INSERT INTO favorite_characters (user_id, character_id, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), f.UserID, f.CharacterID, f.CreatedAt)
	return classify(err)
}

func (r *FavoriteRepository) DeleteCharacter(ctx context.Context, id int64) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM favorite_characters WHERE id = ?`), id)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

func (r *FavoriteRepository) ListPlanetsByUser(ctx context.Context, userID int64) ([]entity.FavoritePlanet, error) {
	q := ext(ctx, r.db)
	favs := []entity.FavoritePlanet{}
	err := sqlx.SelectContext(ctx, q, &favs, q.Rebind(`
		SELECT id, user_id, planet_id, created_at
		FROM favorite_planets
		WHERE user_id = ?
		ORDER BY id
	`), userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite planets: %w", err)
	}
	return favs, nil
}

func (r *FavoriteRepository) FindPlanet(ctx context.Context, userID, planetID int64) (*entity.FavoritePlanet, error) {
	q := ext(ctx, r.db)
	f := &entity.FavoritePlanet{}
	err := sqlx.GetContext(ctx, q, f, q.Rebind(`
		SELECT id, user_id, planet_id, created_at
		FROM favorite_planets
		WHERE user_id = ? AND planet_id = ?
	`), userID, planetID)
	if err != nil {
		return nil, classify(err)
	}
	return f, nil
}

func (r *FavoriteRepository) CreatePlanet(ctx context.Context, f *entity.FavoritePlanet) error {
	q := ext(ctx, r.db)
	f.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	err := sqlx.GetContext(ctx, q, &f.ID, q.Rebind(`
		INSERT INTO favorite_planets (user_id, planet_id, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), f.UserID, f.PlanetID, f.CreatedAt)
	return classify(err)
}

func (r *FavoriteRepository) DeletePlanet(ctx context.Context, id int64) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM favorite_planets WHERE id = ?`), id)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
