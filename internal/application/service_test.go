package application_test

import (
	"testing"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-blog-api/internal/testutil"
)

type services struct {
	users      *application.UserService
	planets    *application.PlanetService
	characters *application.CharacterService
	favorites  *application.FavoriteService
}

func newServices(t *testing.T) services {
	store := testutil.NewStore(t)
	logger := testutil.Logger()
	users := persistence.NewUserRepository(store.DB)
	planets := persistence.NewPlanetRepository(store.DB)
	characters := persistence.NewCharacterRepository(store.DB)
	favorites := persistence.NewFavoriteRepository(store.DB)
	tx := persistence.NewTxManager(store.DB)
	return services{
		users:      application.NewUserService(users, tx, logger),
		planets:    application.NewPlanetService(planets, characters, tx, logger),
		characters: application.NewCharacterService(characters, planets, tx, logger),
		favorites:  application.NewFavoriteService(users, characters, planets, favorites, tx, logger),
	}
}

func name(s string) application.Field[*string] { return application.Of(testutil.Str(s)) }
