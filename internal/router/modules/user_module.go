package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-blog-api/internal/interface/http"
)

// UserModule wires /users. GET /users/favorites runs as the acting user and
// needs the CurrentUser middleware in front of it.
type UserModule struct {
	Handler     *handlers.UserHandler
	CurrentUser gin.HandlerFunc
	// CreateLimiter guards POST /users; may be a no-op.
	CreateLimiter gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, currentUser, createLimiter gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, CurrentUser: currentUser, CreateLimiter: createLimiter}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", m.Handler.List)
	users.POST("", m.CreateLimiter, m.Handler.Create)
	users.GET("/favorites", m.CurrentUser, m.Handler.Favorites)
	users.GET("/:id", m.Handler.Get)
	users.DELETE("/:id", m.Handler.Delete)
}
