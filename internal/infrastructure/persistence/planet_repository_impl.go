package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	"github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

const planetColumns = `id, name, rotation_period, orbital_period, diameter, climate, gravity,
	terrain, surface_water, population, description, image_url, created_at`

type PlanetRepository struct {
	db *sqlx.DB
}

func NewPlanetRepository(db *sqlx.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List(ctx context.Context) ([]entity.Planet, error) {
	q := ext(ctx, r.db)
	planets := []entity.Planet{}
	if err := sqlx.SelectContext(ctx, q, &planets, `SELECT `+planetColumns+` FROM planets ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (r *PlanetRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Planet, error) {
	planets := []entity.Planet{}
	if len(ids) == 0 {
		return planets, nil
	}
	q := ext(ctx, r.db)
	query, args, err := sqlx.In(`SELECT `+planetColumns+` FROM planets WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, q, &planets, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list planets by ids: %w", err)
	}
	return planets, nil
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*entity.Planet, error) {
	q := ext(ctx, r.db)
	p := &entity.Planet{}
	err := sqlx.GetContext(ctx, q, p, q.Rebind(`SELECT `+planetColumns+` FROM planets WHERE id = ?`), id)
	if err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *PlanetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := ext(ctx, r.db)
	var n int
	if err := sqlx.GetContext(ctx, q, &n, q.Rebind(`SELECT COUNT(*) FROM planets WHERE name = ?`), name); err != nil {
		return false, fmt.Errorf("lookup planet name: %w", err)
	}
	return n > 0, nil
}

func (r *PlanetRepository) Create(ctx context.Context, p *entity.Planet) error {
	q := ext(ctx, r.db)
	p.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	err := sqlx.GetContext(ctx, q, &p.ID, q.Rebind(`
		INSERT INTO planets (name, rotation_period, orbital_period, diameter, climate, gravity,
			terrain, surface_water, population, description, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`), p.Name, p.RotationPeriod, p.OrbitalPeriod, p.Diameter, p.Climate, p.Gravity,
		p.Terrain, p.SurfaceWater, p.Population, p.Description, p.ImageURL, p.CreatedAt)
	return classify(err)
}

func (r *PlanetRepository) Update(ctx context.Context, p *entity.Planet) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`
		UPDATE planets
		SET name = ?, rotation_period = ?, orbital_period = ?, diameter = ?, climate = ?, gravity = ?,
			terrain = ?, surface_water = ?, population = ?, description = ?, image_url = ?
		WHERE id = ?
	`), p.Name, p.RotationPeriod, p.OrbitalPeriod, p.Diameter, p.Climate, p.Gravity,
		p.Terrain, p.SurfaceWater, p.Population, p.Description, p.ImageURL, p.ID)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM planets WHERE id = ?`), id)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

var _ repository.PlanetRepository = (*PlanetRepository)(nil)
