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

// CharacterHandler serves the /people resource.
type CharacterHandler struct {
	Svc    *application.CharacterService
	Logger *logrus.Logger
}

func NewCharacterHandler(svc *application.CharacterService, logger *logrus.Logger) *CharacterHandler {
	return &CharacterHandler{Svc: svc, Logger: logger}
}

func (h *CharacterHandler) List(c *gin.Context) {
	chars, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.Characters(chars))
}

func (h *CharacterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrCharacterNotFound)
		return
	}
	ch, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewCharacter(ch))
}

func (h *CharacterHandler) Create(c *gin.Context) {
	patch, err := readCharacterPatch(c)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	ch, err := h.Svc.Create(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.NewCharacter(ch))
}

func (h *CharacterHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrCharacterNotFound)
		return
	}
	patch, err := readCharacterPatch(c)
	if err != nil {
		// a missing character outranks a bad payload
		if _, getErr := h.Svc.Get(c.Request.Context(), id); getErr != nil {
			err = getErr
		}
		respondError(c, h.Logger, err)
		return
	}
	ch, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewCharacter(ch))
}

func (h *CharacterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrCharacterNotFound)
		return
	}
	ch, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Character %s deleted successfully", ch.Name))
}
