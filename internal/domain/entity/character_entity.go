package entity

import "time"

// Character is a catalog entry ("people" on the HTTP surface).
//
// HomeworldID is the only stored link to a planet. Homeworld is filled by
// the application layer for reads and is never persisted.
type Character struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Height      *string   `db:"height"`
	Mass        *string   `db:"mass"`
	HairColor   *string   `db:"hair_color"`
	SkinColor   *string   `db:"skin_color"`
	EyeColor    *string   `db:"eye_color"`
	BirthYear   *string   `db:"birth_year"`
	Gender      *string   `db:"gender"`
	HomeworldID *int64    `db:"homeworld_id"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`

	Homeworld *Planet `db:"-"`
}
