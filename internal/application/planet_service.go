package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-blog-api/internal/domain/repository"
)

type PlanetService struct {
	Repo       repo.PlanetRepository
	Characters repo.CharacterRepository
	Tx         repo.Transactor
	Logger     *logrus.Logger
}

func NewPlanetService(planets repo.PlanetRepository, characters repo.CharacterRepository, tx repo.Transactor, logger *logrus.Logger) *PlanetService {
	return &PlanetService{Repo: planets, Characters: characters, Tx: tx, Logger: logger}
}

func (s *PlanetService) List(ctx context.Context) ([]entity.Planet, error) {
	return s.Repo.List(ctx)
}

func (s *PlanetService) Get(ctx context.Context, id int64) (*entity.Planet, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	return p, err
}

func (s *PlanetService) Create(ctx context.Context, in PlanetPatch) (*entity.Planet, error) {
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	p := &entity.Planet{Name: name}
	applyPlanetPatch(p, in)

	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.Repo.ExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return ErrPlanetExists
		}
		return s.Repo.Create(ctx, p)
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrPlanetExists
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"planet_id": p.ID, "name": p.Name}).Info("planet created")
	return p, nil
}

// Update applies only the fields present in in.
func (s *PlanetService) Update(ctx context.Context, id int64, in PlanetPatch) (*entity.Planet, error) {
	var p *entity.Planet
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.Repo.GetByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPlanetNotFound
		}
		if err != nil {
			return err
		}
		if in.Name.Set {
			if p.Name, err = requiredName(in.Name); err != nil {
				return err
			}
		}
		applyPlanetPatch(p, in)
		return s.Repo.Update(ctx, p)
	})
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return nil, ErrPlanetExists
	case errors.Is(err, repo.ErrNotFound):
		return nil, ErrPlanetNotFound
	case err != nil:
		return nil, err
	}
	return p, nil
}

// Delete removes the planet. Favorites pointing at it are cascaded and the
// characters living there lose their homeworld.
func (s *PlanetService) Delete(ctx context.Context, id int64) (*entity.Planet, error) {
	var p *entity.Planet
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.Repo.Delete(ctx, id)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"planet_id": id, "name": p.Name}).Info("planet deleted")
	return p, nil
}

// Residents lists the characters whose homeworld is the planet.
func (s *PlanetService) Residents(ctx context.Context, id int64) ([]entity.Character, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	chars, err := s.Characters.ListByHomeworld(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range chars {
		chars[i].Homeworld = p
	}
	return chars, nil
}

func applyPlanetPatch(p *entity.Planet, in PlanetPatch) {
	in.RotationPeriod.apply(&p.RotationPeriod)
	in.OrbitalPeriod.apply(&p.OrbitalPeriod)
	in.Diameter.apply(&p.Diameter)
	in.Climate.apply(&p.Climate)
	in.Gravity.apply(&p.Gravity)
	in.Terrain.apply(&p.Terrain)
	in.SurfaceWater.apply(&p.SurfaceWater)
	in.Population.apply(&p.Population)
	in.Description.apply(&p.Description)
	in.ImageURL.apply(&p.ImageURL)
}
