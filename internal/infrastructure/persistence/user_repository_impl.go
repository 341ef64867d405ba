package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	"github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, created_at, is_active`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	q := ext(ctx, r.db)
	users := []entity.User{}
	if err := sqlx.SelectContext(ctx, q, &users, `SELECT `+userColumns+` FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	q := ext(ctx, r.db)
	u := &entity.User{}
	if err := sqlx.GetContext(ctx, q, u, q.Rebind(`SELECT `+userColumns+` FROM users WHERE id = ?`), id); err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	q := ext(ctx, r.db)
	u.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	err := sqlx.GetContext(ctx, q, &u.ID, q.Rebind(`
		INSERT INTO users (username, email, password_hash, first_name, last_name, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`), u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.CreatedAt, u.IsActive)
	return classify(err)
}

// Delete relies on ON DELETE CASCADE to drop the user's favorites in the
// same statement.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	q := ext(ctx, r.db)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return classify(err)
	}
	return affected(res)
}

var _ repository.UserRepository = (*UserRepository)(nil)
