package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/config"
	"github.com/oksasatya/starwars-blog-api/internal/application"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-blog-api/pkg/helpers"
)

type planetSeed struct {
	Name, Climate, Terrain, Population string
}

type characterSeed struct {
	Name, Gender, BirthYear, Homeworld string
}

var planets = []planetSeed{
	{"Tatooine", "arid", "desert", "200000"},
	{"Alderaan", "temperate", "grasslands, mountains", "2000000000"},
	{"Hoth", "frozen", "tundra, ice caves, mountain ranges", "unknown"},
	{"Dagobah", "murky", "swamp, jungles", "unknown"},
}

var characters = []characterSeed{
	{"Luke Skywalker", "male", "19BBY", "Tatooine"},
	{"Leia Organa", "female", "19BBY", "Alderaan"},
	{"Owen Lars", "male", "52BBY", "Tatooine"},
	{"Yoda", "male", "896BBY", ""},
}

func str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	store, err := persistence.Open(ctx, persistence.Options{
		DatabaseURL: cfg.PostgresDSN(),
		SQLitePath:  cfg.SQLitePath,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	}, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()
	if err := store.Migrate(logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	userRepo := persistence.NewUserRepository(store.DB)
	planetRepo := persistence.NewPlanetRepository(store.DB)
	characterRepo := persistence.NewCharacterRepository(store.DB)
	tx := persistence.NewTxManager(store.DB)

	users := application.NewUserService(userRepo, tx, logger)
	planetSvc := application.NewPlanetService(planetRepo, characterRepo, tx, logger)
	characterSvc := application.NewCharacterService(characterRepo, planetRepo, tx, logger)

	u, err := users.Create(ctx, application.CreateUserInput{
		Username:  "demoUser",
		Email:     "demo@starwars.local",
		Password:  "password123",
		FirstName: "Demo",
		LastName:  "User",
	})
	switch {
	case errors.Is(err, application.ErrUserExists):
		helpers.LogInfo(logger, "demo user already present", nil)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		helpers.LogInfo(logger, "seeded user", logrus.Fields{"user_id": u.ID, "username": u.Username, "password": "password123"})
	}

	for _, p := range planets {
		_, err := planetSvc.Create(ctx, application.PlanetPatch{
			Name:       application.Of(str(p.Name)),
			Climate:    application.Of(str(p.Climate)),
			Terrain:    application.Of(str(p.Terrain)),
			Population: application.Of(str(p.Population)),
		})
		if err != nil && !errors.Is(err, application.ErrPlanetExists) {
			log.Fatalf("failed to seed planet %s: %v", p.Name, err)
		}
	}

	all, err := planetSvc.List(ctx)
	if err != nil {
		log.Fatalf("failed to list planets: %v", err)
	}
	planetIDs := make(map[string]int64, len(all))
	for _, p := range all {
		planetIDs[p.Name] = p.ID
	}

	for _, c := range characters {
		patch := application.CharacterPatch{
			Name:      application.Of(str(c.Name)),
			Gender:    application.Of(str(c.Gender)),
			BirthYear: application.Of(str(c.BirthYear)),
		}
		if id, ok := planetIDs[c.Homeworld]; ok {
			patch.HomeworldID = application.Of(&id)
		}
		_, err := characterSvc.Create(ctx, patch)
		if err != nil && !errors.Is(err, application.ErrCharacterExists) {
			log.Fatalf("failed to seed character %s: %v", c.Name, err)
		}
	}
	helpers.LogInfo(logger, "seed complete", logrus.Fields{"planets": len(planets), "characters": len(characters)})
}
