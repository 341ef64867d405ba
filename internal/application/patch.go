package application

import "strings"

// Field is one optional value of a partial update. Set reports whether the
// key was present in the request; Value may still be nil (explicit null).
type Field[T any] struct {
	Set   bool
	Value T
}

// Of returns a set field holding v.
func Of[T any](v T) Field[T] { return Field[T]{Set: true, Value: v} }

func (f Field[T]) apply(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}

// requiredName validates a name field that must resolve to a non-empty string.
func requiredName(f Field[*string]) (string, error) {
	if !f.Set || f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return "", ErrNameRequired
	}
	return *f.Value, nil
}

// CharacterPatch carries the character fields present in a request body.
type CharacterPatch struct {
	Name        Field[*string]
	Height      Field[*string]
	Mass        Field[*string]
	HairColor   Field[*string]
	SkinColor   Field[*string]
	EyeColor    Field[*string]
	BirthYear   Field[*string]
	Gender      Field[*string]
	HomeworldID Field[*int64]
	Description Field[*string]
	ImageURL    Field[*string]
}

// PlanetPatch carries the planet fields present in a request body.
type PlanetPatch struct {
	Name           Field[*string]
	RotationPeriod Field[*string]
	OrbitalPeriod  Field[*string]
	Diameter       Field[*string]
	Climate        Field[*string]
	Gravity        Field[*string]
	Terrain        Field[*string]
	SurfaceWater   Field[*string]
	Population     Field[*string]
	Description    Field[*string]
	ImageURL       Field[*string]
}
