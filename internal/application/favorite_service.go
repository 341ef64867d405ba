package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

// FavoriteService manages the favorites of an explicitly given user.
type FavoriteService struct {
	Users      repo.UserRepository
	Characters repo.CharacterRepository
	Planets    repo.PlanetRepository
	Favorites  repo.FavoriteRepository
	Tx         repo.Transactor
	Logger     *logrus.Logger
}

func NewFavoriteService(
	users repo.UserRepository,
	characters repo.CharacterRepository,
	planets repo.PlanetRepository,
	favorites repo.FavoriteRepository,
	tx repo.Transactor,
	logger *logrus.Logger,
) *FavoriteService {
	return &FavoriteService{
		Users:      users,
		Characters: characters,
		Planets:    planets,
		Favorites:  favorites,
		Tx:         tx,
		Logger:     logger,
	}
}

// UserFavorites is the read model behind GET /users/favorites.
type UserFavorites struct {
	User       *entity.User
	Characters []entity.FavoriteCharacter
	Planets    []entity.FavoritePlanet
}

func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*entity.FavoritePlanet, error) {
	fav := &entity.FavoritePlanet{UserID: userID, PlanetID: planetID}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, userID); err != nil {
			return err
		}
		p, err := s.Planets.GetByID(ctx, planetID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPlanetNotFound
		}
		if err != nil {
			return err
		}
		_, err = s.Favorites.FindPlanet(ctx, userID, planetID)
		if err == nil {
			return ErrPlanetFavorited
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if err := s.Favorites.CreatePlanet(ctx, fav); err != nil {
			return err
		}
		fav.Planet = p
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrPlanetFavorited
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "planet_id": planetID}).Info("favorite planet added")
	return fav, nil
}

func (s *FavoriteService) AddCharacter(ctx context.Context, userID, characterID int64) (*entity.FavoriteCharacter, error) {
	fav := &entity.FavoriteCharacter{UserID: userID, CharacterID: characterID}
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, userID); err != nil {
			return err
		}
		c, err := s.Characters.GetByID(ctx, characterID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCharacterNotFound
		}
		if err != nil {
			return err
		}
		_, err = s.Favorites.FindCharacter(ctx, userID, characterID)
		if err == nil {
			return ErrCharacterFavorited
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if err := s.Favorites.CreateCharacter(ctx, fav); err != nil {
			return err
		}
		chars := []entity.Character{*c}
		if err := attachHomeworlds(ctx, s.Planets, chars); err != nil {
			return err
		}
		fav.Character = &chars[0]
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrCharacterFavorited
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "character_id": characterID}).Info("favorite character added")
	return fav, nil
}

func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		fav, err := s.Favorites.FindPlanet(ctx, userID, planetID)
		if err != nil {
			return err
		}
		return s.Favorites.DeletePlanet(ctx, fav.ID)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return ErrFavoritePlanetNotFound
	}
	return err
}

func (s *FavoriteService) RemoveCharacter(ctx context.Context, userID, characterID int64) error {
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		fav, err := s.Favorites.FindCharacter(ctx, userID, characterID)
		if err != nil {
			return err
		}
		return s.Favorites.DeleteCharacter(ctx, fav.ID)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return ErrFavoriteCharacterNotFound
	}
	return err
}

// List returns the user's favorites with the favorited entities attached.
func (s *FavoriteService) List(ctx context.Context, userID int64) (*UserFavorites, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	favChars, err := s.Favorites.ListCharactersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	charIDs := make([]int64, 0, len(favChars))
	for _, f := range favChars {
		charIDs = append(charIDs, f.CharacterID)
	}
	chars, err := s.Characters.ListByIDs(ctx, charIDs)
	if err != nil {
		return nil, err
	}
	if err := attachHomeworlds(ctx, s.Planets, chars); err != nil {
		return nil, err
	}
	charsByID := make(map[int64]*entity.Character, len(chars))
	for i := range chars {
		charsByID[chars[i].ID] = &chars[i]
	}
	for i := range favChars {
		favChars[i].Character = charsByID[favChars[i].CharacterID]
	}

	favPlanets, err := s.Favorites.ListPlanetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	planetIDs := make([]int64, 0, len(favPlanets))
	for _, f := range favPlanets {
		planetIDs = append(planetIDs, f.PlanetID)
	}
	planets, err := s.Planets.ListByIDs(ctx, planetIDs)
	if err != nil {
		return nil, err
	}
	planetsByID := make(map[int64]*entity.Planet, len(planets))
	for i := range planets {
		planetsByID[planets[i].ID] = &planets[i]
	}
	for i := range favPlanets {
		favPlanets[i].Planet = planetsByID[favPlanets[i].PlanetID]
	}

	return &UserFavorites{User: u, Characters: favChars, Planets: favPlanets}, nil
}

func (s *FavoriteService) requireUser(ctx context.Context, userID int64) error {
	_, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
