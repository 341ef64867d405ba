package entity

import "time"

// FavoriteCharacter links a user to a character; (UserID, CharacterID) is unique.
type FavoriteCharacter struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	CharacterID int64     `db:"character_id"`
	CreatedAt   time.Time `db:"created_at"`

	Character *Character `db:"-"`
}

// FavoritePlanet links a user to a planet; (UserID, PlanetID) is unique.
type FavoritePlanet struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	PlanetID  int64     `db:"planet_id"`
	CreatedAt time.Time `db:"created_at"`

	Planet *Planet `db:"-"`
}
