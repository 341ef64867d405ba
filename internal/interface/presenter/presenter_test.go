package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
)

func str(s string) *string { return &s }

func TestTimestamp(t *testing.T) {
	assert.Nil(t, Timestamp(time.Time{}))

	loc := time.FixedZone("X", 2*60*60)
	ts := Timestamp(time.Date(2024, 5, 4, 12, 30, 0, 500, loc))
	require.NotNil(t, ts)
	assert.Equal(t, "2024-05-04T10:30:00.0000005Z", *ts)
}

func TestCharacterEmbedsHomeworld(t *testing.T) {
	hid := int64(3)
	c := &entity.Character{
		ID:          1,
		Name:        "Luke Skywalker",
		Height:      str("172"),
		HomeworldID: &hid,
		Homeworld:   &entity.Planet{ID: 3, Name: "Tatooine", Climate: str("arid")},
	}

	b, err := json.Marshal(NewCharacter(c))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.NotContains(t, got, "homeworld_id")
	assert.Equal(t, "172", got["height"])
	assert.Nil(t, got["mass"])
	assert.Contains(t, got, "mass")
	assert.Nil(t, got["created_at"])

	hw, ok := got["homeworld"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tatooine", hw["name"])
	assert.Equal(t, "arid", hw["climate"])
	assert.NotContains(t, hw, "residents")
}

func TestCharacterWithoutHomeworldIsNull(t *testing.T) {
	b, err := json.Marshal(NewCharacter(&entity.Character{ID: 2, Name: "R2-D2"}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"homeworld":null`)
}

func TestEmptyListsRenderAsArrays(t *testing.T) {
	for name, v := range map[string]any{
		"planets":    Planets(nil),
		"characters": Characters(nil),
		"users":      Users(nil),
	} {
		b, err := json.Marshal(v)
		require.NoError(t, err, name)
		assert.Equal(t, "[]", string(b), name)
	}

	favs := NewUserFavorites(&application.UserFavorites{User: &entity.User{ID: 1, Username: "luke"}})
	b, err := json.Marshal(favs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":1,"username":"luke","favorite_characters":[],"favorite_planets":[]}`, string(b))
}

func TestUserHidesPassword(t *testing.T) {
	u := &entity.User{ID: 1, Username: "luke", Email: "luke@rebellion.org", PasswordHash: "secret-hash", IsActive: true}
	b, err := json.Marshal(NewUser(u))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"is_active":true`)
}

func TestFavoritePlanetEmbedsPlanet(t *testing.T) {
	f := &entity.FavoritePlanet{ID: 9, UserID: 1, PlanetID: 3, Planet: &entity.Planet{ID: 3, Name: "Hoth"}}
	out := NewFavoritePlanet(f)
	require.NotNil(t, out.Planet)
	assert.Equal(t, "Hoth", out.Planet.Name)
	assert.Equal(t, int64(3), out.PlanetID)
}
