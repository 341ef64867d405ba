package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	"github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

const characterColumns = `id, name, height, mass, hair_color, skin_color, eye_color, birth_year,
	gender, homeworld_id, description, image_url, created_at`

type CharacterRepository struct {
	db *sqlx.DB
}

func NewCharacterRepository(db *sqlx.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) List(ctx context.Context) ([]entity.Character, error) {
	q := ext(ctx, r.db)
	chars := []entity.Character{}
	if err := sqlx.SelectContext(ctx, q, &chars, `SELECT `+characterColumns+` FROM characters ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return chars, nil
}

func (r *CharacterRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Character, error) {
	chars := []entity.Character{}
	if len(ids) == 0 {
		return chars, nil
	}
	q := ext(ctx, r.db)
	query, args, err := sqlx.In(`SELECT `+characterColumns+` FROM characters WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, q, &chars, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list characters by ids: %w", err)
	}
	return chars, nil
}

// ListByHomeworld answers "characters of a planet" from the homeworld index.
func (r *CharacterRepository) ListByHomeworld(ctx context.Context, planetID int64) ([]entity.Character, error) {
	q := ext(ctx, r.db)
	chars := []entity.Character{}
	err := sqlx.SelectContext(ctx, q, &chars,
		q.Rebind(`SELECT `+characterColumns+` FROM characters WHERE homeworld_id = ? ORDER BY id`), planetID)
	if err != nil {
		return nil, fmt.Errorf("list characters by homeworld: %w", err)
	}
	return chars, nil
}

func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*entity.Character, error) {
	q := ext(ctx, r.db)
	c := &entity.Character{}
	err := sqlx.GetContext(ctx, q, c, q.Rebind(`SELECT `+characterColumns+` FROM characters WHERE id = ?`), id)
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

func (r *CharacterRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := ext(ctx, r.db)
	var n int
	if err := sqlx.GetContext(ctx, q, &n, q.Rebind(`SELECT COUNT(*) FROM characters WHERE name = ?`), name); err != nil {
		return false, fmt.Errorf("lookup character name: %w", err)
	}
	return n > 0, nil
}

func (r *CharacterRepository) Create(ctx context.Context, c *entity.Character) error {
	q := ext(ctx, r.db)
	c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	err := sqlx.GetContext(ctx, q, &c.ID, q.Rebind(`
		INSERT INTO characters (name, height, mass, hair_color, skin_color, eye_color, birth_year,
			gender, homeworld_id, description, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`), c.Name, c.Height, c.Mass, c.HairColor, c.SkinColor, c.EyeColor, c.BirthYear,
		c.Gender, c.HomeworldID, c.Description, c.ImageURL, c.CreatedAt)
	return classify(err)
}

func (r *CharacterRepository) Update(ctx context.Context, c *entity.Character) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`
		UPDATE characters
		SET name = ?, height = ?, mass = ?, hair_color = ?, skin_color = ?, eye_color = ?,
			birth_year = ?, gender = ?, homeworld_id = ?, description = ?, image_url = ?
		WHERE id = ?
	`), c.Name, c.Height, c.Mass, c.HairColor, c.SkinColor, c.EyeColor,
		c.BirthYear, c.Gender, c.HomeworldID, c.Description, c.ImageURL, c.ID)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM characters WHERE id = ?`), id)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

var _ repository.CharacterRepository = (*CharacterRepository)(nil)
