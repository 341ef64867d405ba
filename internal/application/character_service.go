package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

type CharacterService struct {
	Repo    repo.CharacterRepository
	Planets repo.PlanetRepository
	Tx      repo.Transactor
	Logger  *logrus.Logger
}

func NewCharacterService(characters repo.CharacterRepository, planets repo.PlanetRepository, tx repo.Transactor, logger *logrus.Logger) *CharacterService {
	return &CharacterService{Repo: characters, Planets: planets, Tx: tx, Logger: logger}
}

func (s *CharacterService) List(ctx context.Context) ([]entity.Character, error) {
	chars, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := attachHomeworlds(ctx, s.Planets, chars); err != nil {
		return nil, err
	}
	return chars, nil
}

func (s *CharacterService) Get(ctx context.Context, id int64) (*entity.Character, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.attachHomeworld(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CharacterService) Create(ctx context.Context, in CharacterPatch) (*entity.Character, error) {
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	c := &entity.Character{Name: name}
	applyCharacterPatch(c, in)

	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.Repo.ExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return ErrCharacterExists
		}
		if err := s.checkHomeworld(ctx, c.HomeworldID); err != nil {
			return err
		}
		if err := s.Repo.Create(ctx, c); err != nil {
			return err
		}
		return s.attachHomeworld(ctx, c)
	})
	if err = s.translateWriteErr(err); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"character_id": c.ID, "name": c.Name}).Info("character created")
	return c, nil
}

// Update applies only the fields present in in.
func (s *CharacterService) Update(ctx context.Context, id int64, in CharacterPatch) (*entity.Character, error) {
	var c *entity.Character
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.Repo.GetByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCharacterNotFound
		}
		if err != nil {
			return err
		}
		if in.Name.Set {
			if c.Name, err = requiredName(in.Name); err != nil {
				return err
			}
		}
		applyCharacterPatch(c, in)
		if in.HomeworldID.Set {
			if err := s.checkHomeworld(ctx, c.HomeworldID); err != nil {
				return err
			}
		}
		if err := s.Repo.Update(ctx, c); err != nil {
			return err
		}
		return s.attachHomeworld(ctx, c)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err = s.translateWriteErr(err); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CharacterService) Delete(ctx context.Context, id int64) (*entity.Character, error) {
	var c *entity.Character
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"character_id": id, "name": c.Name}).Info("character deleted")
	return c, nil
}

func (s *CharacterService) checkHomeworld(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := s.Planets.GetByID(ctx, *id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrHomeworldNotFound
	}
	return err
}

func (s *CharacterService) attachHomeworld(ctx context.Context, c *entity.Character) error {
	c.Homeworld = nil
	if c.HomeworldID == nil {
		return nil
	}
	p, err := s.Planets.GetByID(ctx, *c.HomeworldID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	c.Homeworld = p
	return nil
}

// translateWriteErr maps constraint violations that slipped past the
// pre-checks (concurrent writers) onto the same client errors.
func (s *CharacterService) translateWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrDuplicate):
		return ErrCharacterExists
	case errors.Is(err, repo.ErrForeignKey):
		return ErrHomeworldNotFound
	}
	return err
}

// attachHomeworlds fills Homeworld for every character with one batched
// planet lookup.
func attachHomeworlds(ctx context.Context, planets repo.PlanetRepository, chars []entity.Character) error {
	seen := make(map[int64]bool)
	ids := make([]int64, 0, len(chars))
	for _, c := range chars {
		if c.HomeworldID != nil && !seen[*c.HomeworldID] {
			seen[*c.HomeworldID] = true
			ids = append(ids, *c.HomeworldID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	found, err := planets.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[int64]*entity.Planet, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	for i := range chars {
		if chars[i].HomeworldID != nil {
			chars[i].Homeworld = byID[*chars[i].HomeworldID]
		}
	}
	return nil
}

func applyCharacterPatch(c *entity.Character, in CharacterPatch) {
	in.Height.apply(&c.Height)
	in.Mass.apply(&c.Mass)
	in.HairColor.apply(&c.HairColor)
	in.SkinColor.apply(&c.SkinColor)
	in.EyeColor.apply(&c.EyeColor)
	in.BirthYear.apply(&c.BirthYear)
	in.Gender.apply(&c.Gender)
	in.HomeworldID.apply(&c.HomeworldID)
	in.Description.apply(&c.Description)
	in.ImageURL.apply(&c.ImageURL)
}
