package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-blog-api/internal/interface/presenter"
	"github.com/oksasatya/starwars-blog-api/pkg/response"
	"github.com/oksasatya/starwars-blog-api/pkg/validation"
)

type UserHandler struct {
	Svc         *application.UserService
	FavoriteSvc *application.FavoriteService
	Logger      *logrus.Logger
}

func NewUserHandler(svc *application.UserService, favorites *application.FavoriteService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, FavoriteSvc: favorites, Logger: logger}
}

type createUserRequest struct {
	Username  string `json:"username" binding:"required,username"`
	Email     string `json:"email" binding:"required,email,max=120"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	IsActive  *bool  `json:"is_active"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.Users(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrUserNotFound)
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewUser(u))
}

// Favorites lists the favorites of the acting user.
func (h *UserHandler) Favorites(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	favs, err := h.FavoriteSvc.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, presenter.NewUserFavorites(favs))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, presenter.NewUser(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrUserNotFound)
		return
	}
	u, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("User %s deleted successfully", u.Username))
}
