package entity

import "time"

// Planet is a catalog entry. All descriptive columns are free-form and
// nullable; only Name is required and unique.
type Planet struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	RotationPeriod *string   `db:"rotation_period"`
	OrbitalPeriod  *string   `db:"orbital_period"`
	Diameter       *string   `db:"diameter"`
	Climate        *string   `db:"climate"`
	Gravity        *string   `db:"gravity"`
	Terrain        *string   `db:"terrain"`
	SurfaceWater   *string   `db:"surface_water"`
	Population     *string   `db:"population"`
	Description    *string   `db:"description"`
	ImageURL       *string   `db:"image_url"`
	CreatedAt      time.Time `db:"created_at"`
}
