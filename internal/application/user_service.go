package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-blog-api/internal/domain/repository"
	"github.com/oksasatya/starwars-blog-api/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Tx     repo.Transactor
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, tx repo.Transactor, logger *logrus.Logger) *UserService {
	return &UserService{Repo: users, Tx: tx, Logger: logger}
}

// CreateUserInput is a validated registration payload.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	// nil means active
	IsActive *bool
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsActive:     in.IsActive == nil || *in.IsActive,
	}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, u)
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	return u, nil
}

// Delete removes the user; its favorites go with it.
func (s *UserService) Delete(ctx context.Context, id int64) (*entity.User, error) {
	var u *entity.User
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		u, err = s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": id, "username": u.Username}).Info("user deleted")
	return u, nil
}
