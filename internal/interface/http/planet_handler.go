package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/interface/presenter"
	"github.com/oksasatya/starwars-blog-api/pkg/response"
)

// PlanetHandler serves the /planets resource.
type PlanetHandler struct {
	Svc    *application.PlanetService
	Logger *logrus.Logger
}

func NewPlanetHandler(svc *application.PlanetService, logger *logrus.Logger) *PlanetHandler {
	return &PlanetHandler{Svc: svc, Logger: logger}
}

func (h *PlanetHandler) List(c *gin.Context) {
	planets, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.Planets(planets))
}

func (h *PlanetHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrPlanetNotFound)
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewPlanet(p))
}

// Residents lists the characters whose homeworld is the planet.
func (h *PlanetHandler) Residents(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrPlanetNotFound)
		return
	}
	chars, err := h.Svc.Residents(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.Characters(chars))
}

func (h *PlanetHandler) Create(c *gin.Context) {
	patch, err := readPlanetPatch(c)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.NewPlanet(p))
}

func (h *PlanetHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrPlanetNotFound)
		return
	}
	patch, err := readPlanetPatch(c)
	if err != nil {
		// a missing planet outranks a bad payload
		if _, getErr := h.Svc.Get(c.Request.Context(), id); getErr != nil {
			err = getErr
		}
		respondError(c, h.Logger, err)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewPlanet(p))
}

func (h *PlanetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrPlanetNotFound)
		return
	}
	p, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Planet %s deleted successfully", p.Name))
}
