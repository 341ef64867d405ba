package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

func createUser(t *testing.T, s services, username string) *entity.User {
	t.Helper()
	u, err := s.users.Create(context.Background(), application.CreateUserInput{
		Username:  username,
		Email:     username + "@rebellion.org",
		Password:  "use-the-force",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return u
}

func TestFavoriteServiceAddPlanetTwice(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := createUser(t, s, "luke")
	p, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Yavin IV")})
	require.NoError(t, err)

	fav, err := s.favorites.AddPlanet(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, fav.UserID)
	require.NotNil(t, fav.Planet)
	assert.Equal(t, "Yavin IV", fav.Planet.Name)

	_, err = s.favorites.AddPlanet(ctx, u.ID, p.ID)
	assert.ErrorIs(t, err, application.ErrPlanetFavorited)

	list, err := s.favorites.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list.Planets, 1)
	assert.Empty(t, list.Characters)
}

func TestFavoriteServiceAddMissingTargets(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.favorites.AddPlanet(ctx, 1, 5)
	assert.ErrorIs(t, err, application.ErrUserNotFound)

	u := createUser(t, s, "han")
	_, err = s.favorites.AddPlanet(ctx, u.ID, 5)
	assert.ErrorIs(t, err, application.ErrPlanetNotFound)
	_, err = s.favorites.AddCharacter(ctx, u.ID, 5)
	assert.ErrorIs(t, err, application.ErrCharacterNotFound)
}

func TestFavoriteServiceCharacterEmbedsHomeworld(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := createUser(t, s, "leia")
	alderaan, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Alderaan")})
	require.NoError(t, err)
	bail, err := s.characters.Create(ctx, application.CharacterPatch{
		Name:        name("Bail Organa"),
		HomeworldID: application.Of(&alderaan.ID),
	})
	require.NoError(t, err)

	fav, err := s.favorites.AddCharacter(ctx, u.ID, bail.ID)
	require.NoError(t, err)
	require.NotNil(t, fav.Character)
	require.NotNil(t, fav.Character.Homeworld)
	assert.Equal(t, "Alderaan", fav.Character.Homeworld.Name)

	_, err = s.favorites.AddCharacter(ctx, u.ID, bail.ID)
	assert.ErrorIs(t, err, application.ErrCharacterFavorited)

	list, err := s.favorites.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "leia", list.User.Username)
	require.Len(t, list.Characters, 1)
	require.NotNil(t, list.Characters[0].Character)
	require.NotNil(t, list.Characters[0].Character.Homeworld)
	assert.Equal(t, alderaan.ID, list.Characters[0].Character.Homeworld.ID)
}

func TestFavoriteServiceRemove(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := createUser(t, s, "lando")
	p, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Bespin")})
	require.NoError(t, err)
	c, err := s.characters.Create(ctx, application.CharacterPatch{Name: name("Lobot")})
	require.NoError(t, err)

	assert.ErrorIs(t, s.favorites.RemovePlanet(ctx, u.ID, p.ID), application.ErrFavoritePlanetNotFound)
	assert.ErrorIs(t, s.favorites.RemoveCharacter(ctx, u.ID, c.ID), application.ErrFavoriteCharacterNotFound)

	_, err = s.favorites.AddPlanet(ctx, u.ID, p.ID)
	require.NoError(t, err)
	_, err = s.favorites.AddCharacter(ctx, u.ID, c.ID)
	require.NoError(t, err)

	require.NoError(t, s.favorites.RemovePlanet(ctx, u.ID, p.ID))
	require.NoError(t, s.favorites.RemoveCharacter(ctx, u.ID, c.ID))

	list, err := s.favorites.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Planets)
	assert.Empty(t, list.Characters)
}

func TestFavoriteServiceListUnknownUser(t *testing.T) {
	s := newServices(t)
	_, err := s.favorites.List(context.Background(), 1)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestDeletingUserClearsFavorites(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := createUser(t, s, "wedge")
	p, err := s.planets.Create(ctx, application.PlanetPatch{Name: name("Corellia")})
	require.NoError(t, err)
	_, err = s.favorites.AddPlanet(ctx, u.ID, p.ID)
	require.NoError(t, err)

	_, err = s.users.Delete(ctx, u.ID)
	require.NoError(t, err)

	planets, err := s.favorites.Favorites.ListPlanetsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, planets)
	_, err = s.favorites.List(ctx, u.ID)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
