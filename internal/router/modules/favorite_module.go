package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-blog-api/internal/interface/http"
)

type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
	// Middleware runs before every favorite route: identity first, then
	// per-user limits.
	Middleware []gin.HandlerFunc
}

func NewFavoriteModule(h *handlers.FavoriteHandler, mw ...gin.HandlerFunc) *FavoriteModule {
	return &FavoriteModule{Handler: h, Middleware: mw}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	fav := rg.Group("/favorite")
	fav.Use(m.Middleware...)
	{
		fav.POST("/planet/:id", m.Handler.AddPlanet)
		fav.DELETE("/planet/:id", m.Handler.RemovePlanet)
		fav.POST("/people/:id", m.Handler.AddCharacter)
		fav.DELETE("/people/:id", m.Handler.RemoveCharacter)
	}
}
