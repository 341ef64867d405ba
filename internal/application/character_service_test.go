package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/testutil"
)

func TestCharacterServiceCreateWithHomeworld(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	tatooine, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Tatooine")})
	require.NoError(t, err)

	luke, err := s.characters.Create(ctx, application.CharacterPatch{
		Name:        name("Luke Skywalker"),
		Height:      application.Of(testutil.Str("172")),
		HomeworldID: application.Of(&tatooine.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, luke.Homeworld)
	assert.Equal(t, tatooine.ID, luke.Homeworld.ID)

	_, err = s.characters.Create(ctx, application.CharacterPatch{Name: name("Luke Skywalker")})
	assert.ErrorIs(t, err, application.ErrCharacterExists)

	_, err = s.characters.Create(ctx, application.CharacterPatch{
		Name:        name("Nobody"),
		HomeworldID: application.Of(testutil.ID(404)),
	})
	assert.ErrorIs(t, err, application.ErrHomeworldNotFound)

	all, err := s.characters.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Homeworld)
	assert.Equal(t, "Tatooine", all[0].Homeworld.Name)
}

func TestCharacterServiceUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	naboo, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Naboo")})
	require.NoError(t, err)
	c, err := s.characters.Create(ctx, application.CharacterPatch{
		Name:      name("Padme Amidala"),
		Gender:    application.Of(testutil.Str("female")),
		EyeColor:  application.Of(testutil.Str("brown")),
		BirthYear: application.Of(testutil.Str("46BBY")),
	})
	require.NoError(t, err)
	assert.Nil(t, c.Homeworld)

	updated, err := s.characters.Update(ctx, c.ID, application.CharacterPatch{
		EyeColor:    application.Of(testutil.Str("hazel")),
		HomeworldID: application.Of(&naboo.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Padme Amidala", updated.Name)
	assert.Equal(t, "female", *updated.Gender)
	assert.Equal(t, "46BBY", *updated.BirthYear)
	assert.Equal(t, "hazel", *updated.EyeColor)
	require.NotNil(t, updated.Homeworld)
	assert.Equal(t, "Naboo", updated.Homeworld.Name)

	cleared, err := s.characters.Update(ctx, c.ID, application.CharacterPatch{
		HomeworldID: application.Of[*int64](nil),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.HomeworldID)
	assert.Nil(t, cleared.Homeworld)

	_, err = s.characters.Update(ctx, c.ID, application.CharacterPatch{HomeworldID: application.Of(testutil.ID(999))})
	assert.ErrorIs(t, err, application.ErrHomeworldNotFound)

	_, err = s.characters.Update(ctx, 12345, application.CharacterPatch{Gender: application.Of(testutil.Str("x"))})
	assert.ErrorIs(t, err, application.ErrCharacterNotFound)
}

func TestCharacterServiceDelete(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	c, err := s.characters.Create(ctx, application.CharacterPatch{Name: name("Yoda")})
	require.NoError(t, err)

	deleted, err := s.characters.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yoda", deleted.Name)

	_, err = s.characters.Get(ctx, c.ID)
	assert.ErrorIs(t, err, application.ErrCharacterNotFound)
	_, err = s.characters.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, application.ErrCharacterNotFound)
}
