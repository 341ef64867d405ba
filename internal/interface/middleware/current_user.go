package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-blog-api/internal/identity"
	"github.com/oksasatya/starwars-blog-api/pkg/response"
)

// CtxUserIDKey holds the acting user id (int64) in the Gin context.
const CtxUserIDKey = "userID"

// CurrentUser resolves the acting user and stores its id under CtxUserIDKey.
func CurrentUser(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolver.UserID(c.Request)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Set(CtxUserIDKey, id)
		c.Next()
	}
}
