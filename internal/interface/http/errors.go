package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/pkg/helpers"
	"github.com/oksasatya/starwars-blog-api/pkg/response"
)

// respondError maps application errors to their status; anything else is
// logged and reported as a generic 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *application.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case application.KindNotFound:
			response.Error(c, http.StatusNotFound, appErr.Message)
			return
		case application.KindBadRequest:
			response.Error(c, http.StatusBadRequest, appErr.Message)
			return
		}
	}
	helpers.LogError(logger, "request failed", err, logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"request_id": c.GetString("request_id"),
	})
	response.Error(c, http.StatusInternalServerError, "internal server error")
}

// pathID parses a positive integer path parameter. Anything else names a
// resource that cannot exist.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
