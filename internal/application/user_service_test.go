package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/testutil"
	"github.com/oksasatya/starwars-blog-api/pkg/helpers"
)

func TestUserServiceCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	u := createUser(t, s, "rey")
	assert.NotEqual(t, "use-the-force", u.PasswordHash)
	assert.True(t, helpers.PasswordMatches(u.PasswordHash, "use-the-force"))
	assert.True(t, u.IsActive)

	inactive := false
	_, err := s.users.Create(ctx, application.CreateUserInput{
		Username: "rey", Email: "other@rebellion.org", Password: "password1", FirstName: "R", LastName: "S",
	})
	assert.ErrorIs(t, err, application.ErrUserExists)

	// 40 runes, 80 bytes
	_, err = s.users.Create(ctx, application.CreateUserInput{
		Username: "poe", Email: "poe@rebellion.org", Password: strings.Repeat("ж", 40), FirstName: "P", LastName: "D",
	})
	assert.ErrorIs(t, err, application.ErrPasswordTooLong)

	finn, err := s.users.Create(ctx, application.CreateUserInput{
		Username: "finn", Email: "finn@rebellion.org", Password: "password1", FirstName: "F", LastName: "N", IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, finn.IsActive)

	users, err := s.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = s.users.Get(ctx, 999)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
	_, err = s.users.Delete(ctx, 999)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestUserServiceStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return(nil, storeErr)
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, storeErr)

	s := application.NewUserService(repo, passthroughTx{}, testutil.Logger())

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
	var appErr *application.Error
	assert.False(t, errors.As(err, &appErr), "store failures are not client errors")

	repo.AssertExpectations(t)
}
