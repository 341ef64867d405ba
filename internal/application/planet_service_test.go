package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/testutil"
)

func TestPlanetServiceCreate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	p, err := s.planets.Create(ctx, application.PlanetPatch{
		Name:    name("Tatooine"),
		Climate: application.Of(testutil.Str("arid")),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	_, err = s.planets.Create(ctx, application.PlanetPatch{Name: name("Tatooine")})
	assert.ErrorIs(t, err, application.ErrPlanetExists)

	_, err = s.planets.Create(ctx, application.PlanetPatch{})
	assert.ErrorIs(t, err, application.ErrNameRequired)

	_, err = s.planets.Create(ctx, application.PlanetPatch{Name: name("   ")})
	assert.ErrorIs(t, err, application.ErrNameRequired)

	all, err := s.planets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlanetServiceUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	p, err := s.planets.Create(ctx, application.PlanetPatch{
		Name:       name("Hoth"),
		Climate:    application.Of(testutil.Str("frozen")),
		Population: application.Of(testutil.Str("unknown")),
	})
	require.NoError(t, err)

	updated, err := s.planets.Update(ctx, p.ID, application.PlanetPatch{
		Population: application.Of(testutil.Str("0")),
		Gravity:    application.Of[*string](nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hoth", updated.Name)
	require.NotNil(t, updated.Climate)
	assert.Equal(t, "frozen", *updated.Climate)
	require.NotNil(t, updated.Population)
	assert.Equal(t, "0", *updated.Population)
	assert.Nil(t, updated.Gravity)
	assert.True(t, p.CreatedAt.Equal(updated.CreatedAt))

	_, err = s.planets.Update(ctx, p.ID, application.PlanetPatch{Name: application.Of[*string](nil)})
	assert.ErrorIs(t, err, application.ErrNameRequired)

	_, err = s.planets.Update(ctx, 999, application.PlanetPatch{Name: name("Nowhere")})
	assert.ErrorIs(t, err, application.ErrPlanetNotFound)
}

func TestPlanetServiceRenameOntoExistingName(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Naboo")})
	require.NoError(t, err)
	p, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Mustafar")})
	require.NoError(t, err)

	_, err = s.planets.Update(ctx, p.ID, application.PlanetPatch{Name: name("Naboo")})
	assert.ErrorIs(t, err, application.ErrPlanetExists)

	got, err := s.planets.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mustafar", got.Name)
}

func TestPlanetServiceDeleteAndResidents(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	p, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Kashyyyk")})
	require.NoError(t, err)
	chewie, err := s.characters.Create(ctx, application.CharacterPatch{
		Name:        name("Chewbacca"),
		HomeworldID: application.Of(&p.ID),
	})
	require.NoError(t, err)

	residents, err := s.planets.Residents(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, chewie.ID, residents[0].ID)
	require.NotNil(t, residents[0].Homeworld)
	assert.Equal(t, "Kashyyyk", residents[0].Homeworld.Name)

	deleted, err := s.planets.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kashyyyk", deleted.Name)

	_, err = s.planets.Get(ctx, p.ID)
	assert.ErrorIs(t, err, application.ErrPlanetNotFound)
	_, err = s.planets.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, application.ErrPlanetNotFound)
	_, err = s.planets.Residents(ctx, p.ID)
	assert.ErrorIs(t, err, application.ErrPlanetNotFound)

	orphan, err := s.characters.Get(ctx, chewie.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.HomeworldID)
	assert.Nil(t, orphan.Homeworld)
}
