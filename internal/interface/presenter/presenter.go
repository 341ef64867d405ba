// Package presenter turns domain entities into their JSON projections.
//
// Nesting is one level deep: a character embeds its homeworld planet and a
// favorite embeds its target, but nothing embeds back. Lists are never nil so
// they render as [].
package presenter

import (
	"time"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

type Planet struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	RotationPeriod *string `json:"rotation_period"`
	OrbitalPeriod  *string `json:"orbital_period"`
	Diameter       *string `json:"diameter"`
	Climate        *string `json:"climate"`
	Gravity        *string `json:"gravity"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *string `json:"surface_water"`
	Population     *string `json:"population"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
	CreatedAt      *string `json:"created_at"`
}

type Character struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Height      *string `json:"height"`
	Mass        *string `json:"mass"`
	HairColor   *string `json:"hair_color"`
	SkinColor   *string `json:"skin_color"`
	EyeColor    *string `json:"eye_color"`
	BirthYear   *string `json:"birth_year"`
	Gender      *string `json:"gender"`
	Homeworld   *Planet `json:"homeworld"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	CreatedAt   *string `json:"created_at"`
}

type FavoriteCharacter struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	CharacterID int64      `json:"character_id"`
	Character   *Character `json:"character"`
	CreatedAt   *string    `json:"created_at"`
}

type FavoritePlanet struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	PlanetID  int64   `json:"planet_id"`
	Planet    *Planet `json:"planet"`
	CreatedAt *string `json:"created_at"`
}

// User never carries the password hash or favorites.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	CreatedAt *string `json:"created_at"`
	IsActive  bool    `json:"is_active"`
}

type UserFavorites struct {
	UserID             int64               `json:"user_id"`
	Username           string              `json:"username"`
	FavoriteCharacters []FavoriteCharacter `json:"favorite_characters"`
	FavoritePlanets    []FavoritePlanet    `json:"favorite_planets"`
}

// Timestamp formats t as RFC 3339 in UTC, or nil for the zero time.
func Timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func NewPlanet(p *entity.Planet) *Planet {
	if p == nil {
		return nil
	}
	return &Planet{
		ID:             p.ID,
		Name:           p.Name,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Diameter:       p.Diameter,
		Climate:        p.Climate,
		Gravity:        p.Gravity,
		Terrain:        p.Terrain,
		SurfaceWater:   p.SurfaceWater,
		Population:     p.Population,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		CreatedAt:      Timestamp(p.CreatedAt),
	}
}

func Planets(ps []entity.Planet) []Planet {
	out := make([]Planet, 0, len(ps))
	for i := range ps {
		out = append(out, *NewPlanet(&ps[i]))
	}
	return out
}

func NewCharacter(c *entity.Character) *Character {
	if c == nil {
		return nil
	}
	return &Character{
		ID:          c.ID,
		Name:        c.Name,
		Height:      c.Height,
		Mass:        c.Mass,
		HairColor:   c.HairColor,
		SkinColor:   c.SkinColor,
		EyeColor:    c.EyeColor,
		BirthYear:   c.BirthYear,
		Gender:      c.Gender,
		Homeworld:   NewPlanet(c.Homeworld),
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   Timestamp(c.CreatedAt),
	}
}

func Characters(cs []entity.Character) []Character {
	out := make([]Character, 0, len(cs))
	for i := range cs {
		out = append(out, *NewCharacter(&cs[i]))
	}
	return out
}

func NewFavoriteCharacter(f *entity.FavoriteCharacter) *FavoriteCharacter {
	return &FavoriteCharacter{
		ID:          f.ID,
		UserID:      f.UserID,
		CharacterID: f.CharacterID,
		Character:   NewCharacter(f.Character),
		CreatedAt:   Timestamp(f.CreatedAt),
	}
}

func NewFavoritePlanet(f *entity.FavoritePlanet) *FavoritePlanet {
	return &FavoritePlanet{
		ID:        f.ID,
		UserID:    f.UserID,
		PlanetID:  f.PlanetID,
		Planet:    NewPlanet(f.Planet),
		CreatedAt: Timestamp(f.CreatedAt),
	}
}

func NewUser(u *entity.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: Timestamp(u.CreatedAt),
		IsActive:  u.IsActive,
	}
}

func Users(us []entity.User) []User {
	out := make([]User, 0, len(us))
	for i := range us {
		out = append(out, *NewUser(&us[i]))
	}
	return out
}

func NewUserFavorites(f *application.UserFavorites) *UserFavorites {
	out := &UserFavorites{
		UserID:             f.User.ID,
		Username:           f.User.Username,
		FavoriteCharacters: make([]FavoriteCharacter, 0, len(f.Characters)),
		FavoritePlanets:    make([]FavoritePlanet, 0, len(f.Planets)),
	}
	for i := range f.Characters {
		out.FavoriteCharacters = append(out.FavoriteCharacters, *NewFavoriteCharacter(&f.Characters[i]))
	}
	for i := range f.Planets {
		out.FavoritePlanets = append(out.FavoritePlanets, *NewFavoritePlanet(&f.Planets[i]))
	}
	return out
}
