package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/container"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
	handlers "github.com/oksasatya/starwars-blog-api/internal/interface/http"
	"github.com/oksasatya/starwars-blog-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-blog-api/internal/router/modules"
)

// userCreateLimit bounds account creation per IP and route, on top of the
// global per-IP limit.
const userCreateLimit = 30

type Services struct {
	Users      *application.UserService
	Characters *application.CharacterService
	Planets    *application.PlanetService
	Favorites  *application.FavoriteService
}

func buildServices() Services {
	db := container.GetStore().DB
	logger := container.GetLogger()

	users := persistence.NewUserRepository(db)
	characters := persistence.NewCharacterRepository(db)
	planets := persistence.NewPlanetRepository(db)
	favorites := persistence.NewFavoriteRepository(db)
	tx := persistence.NewTxManager(db)

	return Services{
		Users:      application.NewUserService(users, tx, logger),
		Characters: application.NewCharacterService(characters, planets, tx, logger),
		Planets:    application.NewPlanetService(planets, characters, tx, logger),
		Favorites:  application.NewFavoriteService(users, characters, planets, favorites, tx, logger),
	}
}

func allowFunc() middleware.AllowFunc {
	if container.GetConfig().RateLimitAllowPrivate {
		return middleware.AllowPrivateIP()
	}
	return nil
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	rdb := container.GetRedis()
	svc := buildServices()

	r.Use(middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP(), allowFunc()))

	currentUser := middleware.CurrentUser(container.GetResolver())

	r.Add(modules.NewSitemapModule(handlers.NewSitemapHandler(r.Engine)))
	r.Add(modules.NewCatalogModule(
		handlers.NewCharacterHandler(svc.Characters, logger),
		handlers.NewPlanetHandler(svc.Planets, logger),
	))
	r.Add(modules.NewUserModule(
		handlers.NewUserHandler(svc.Users, svc.Favorites, logger),
		currentUser,
		middleware.RateLimit(rdb, userCreateLimit, time.Minute, middleware.KeyByIPAndPath(), allowFunc()),
	))
	r.Add(modules.NewFavoriteModule(
		handlers.NewFavoriteHandler(svc.Favorites, logger),
		currentUser,
		middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByUserID(), allowFunc()),
	))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(
			container.GetStore().DB,
			middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByIP(), allowFunc()),
		))
	}
}

// New builds the engine with global middleware and every module mounted at
// the site root.
func New() *gin.Engine {
	cfg := container.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(corsMiddleware(cfg.CORSOrigins()))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r, "/")
	InitModules(reg)
	reg.RegisterAll()
	return r
}
