package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-blog-api/internal/interface/presenter"
	"github.com/oksasatya/starwars-blog-api/pkg/response"
)

// FavoriteHandler adds and removes favorites of the acting user.
type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrPlanetNotFound)
		return
	}
	fav, err := h.Svc.AddPlanet(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.NewFavoritePlanet(fav))
}

func (h *FavoriteHandler) AddCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrCharacterNotFound)
		return
	}
	fav, err := h.Svc.AddCharacter(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.NewFavoriteCharacter(fav))
}

func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrFavoritePlanetNotFound)
		return
	}
	if err := h.Svc.RemovePlanet(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Favorite planet deleted successfully")
}

func (h *FavoriteHandler) RemoveCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrFavoriteCharacterNotFound)
		return
	}
	if err := h.Svc.RemoveCharacter(c.Request.Context(), c.GetInt64(middleware.CtxUserIDKey), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Favorite character deleted successfully")
}
