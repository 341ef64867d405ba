package application_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// passthroughTx runs fn without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockPlanetRepository is a testify mock of repository.PlanetRepository.
type MockPlanetRepository struct {
	mock.Mock
}

func (m *MockPlanetRepository) List(ctx context.Context) ([]entity.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Planet), args.Error(1)
}

func (m *MockPlanetRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Planet, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Planet), args.Error(1)
}

func (m *MockPlanetRepository) GetByID(ctx context.Context, id int64) (*entity.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Planet), args.Error(1)
}

func (m *MockPlanetRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanetRepository) Create(ctx context.Context, p *entity.Planet) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPlanetRepository) Update(ctx context.Context, p *entity.Planet) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPlanetRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockCharacterRepository is a testify mock of repository.CharacterRepository.
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) characters(args mock.Arguments) ([]entity.Character, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Character), args.Error(1)
}

func (m *MockCharacterRepository) List(ctx context.Context) ([]entity.Character, error) {
	return m.characters(m.Called(ctx))
}

func (m *MockCharacterRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Character, error) {
	return m.characters(m.Called(ctx, ids))
}

func (m *MockCharacterRepository) ListByHomeworld(ctx context.Context, planetID int64) ([]entity.Character, error) {
	return m.characters(m.Called(ctx, planetID))
}

func (m *MockCharacterRepository) GetByID(ctx context.Context, id int64) (*entity.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Character), args.Error(1)
}

func (m *MockCharacterRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCharacterRepository) Create(ctx context.Context, c *entity.Character) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCharacterRepository) Update(ctx context.Context, c *entity.Character) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCharacterRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFavoriteRepository is a testify mock of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ListCharactersByUser(ctx context.Context, userID int64) ([]entity.FavoriteCharacter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavoriteCharacter), args.Error(1)
}

func (m *MockFavoriteRepository) FindCharacter(ctx context.Context, userID, characterID int64) (*entity.FavoriteCharacter, error) {
	args := m.Called(ctx, userID, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoriteCharacter), args.Error(1)
}

func (m *MockFavoriteRepository) CreateCharacter(ctx context.Context, f *entity.FavoriteCharacter) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFavoriteRepository) DeleteCharacter(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFavoriteRepository) ListPlanetsByUser(ctx context.Context, userID int64) ([]entity.FavoritePlanet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavoritePlanet), args.Error(1)
}

func (m *MockFavoriteRepository) FindPlanet(ctx context.Context, userID, planetID int64) (*entity.FavoritePlanet, error) {
	args := m.Called(ctx, userID, planetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoritePlanet), args.Error(1)
}

func (m *MockFavoriteRepository) CreatePlanet(ctx context.Context, f *entity.FavoritePlanet) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFavoriteRepository) DeletePlanet(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// sqlmockTx returns a TxManager over sqlmock that expects exactly one
// transaction ending in rollback. Expectations are checked at cleanup.
func sqlmockTx(t *testing.T) *persistence.TxManager {
	t.Helper()
	db, sm, err := sqlmock.New()
	require.NoError(t, err)
	sm.ExpectBegin()
	sm.ExpectRollback()
	t.Cleanup(func() {
		require.NoError(t, sm.ExpectationsWereMet())
		_ = db.Close()
	})
	return persistence.NewTxManager(sqlx.NewDb(db, "sqlmock"))
}
