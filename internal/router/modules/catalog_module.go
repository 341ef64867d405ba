package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-blog-api/internal/interface/http"
)

// CatalogModule wires the character (/people) and planet (/planets) CRUD routes.
type CatalogModule struct {
	Characters *handlers.CharacterHandler
	Planets    *handlers.PlanetHandler
}

func NewCatalogModule(characters *handlers.CharacterHandler, planets *handlers.PlanetHandler) *CatalogModule {
	return &CatalogModule{Characters: characters, Planets: planets}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	people := rg.Group("/people")
	{
		people.GET("", m.Characters.List)
		people.POST("", m.Characters.Create)
		people.GET("/:id", m.Characters.Get)
		people.PUT("/:id", m.Characters.Update)
		people.DELETE("/:id", m.Characters.Delete)
	}

	planets := rg.Group("/planets")
	{
		planets.GET("", m.Planets.List)
		planets.POST("", m.Planets.Create)
		planets.GET("/:id", m.Planets.Get)
		planets.GET("/:id/people", m.Planets.Residents)
		planets.PUT("/:id", m.Planets.Update)
		planets.DELETE("/:id", m.Planets.Delete)
	}
}
