package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/config"
	"github.com/oksasatya/starwars-blog-api/internal/identity"
	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	store       *persistence.Store
	redisClient *redis.Client
	resolver    identity.Resolver
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetStore(s *persistence.Store)   { store = s }
func GetStore() *persistence.Store    { return store }
func SetRedis(r *redis.Client)        { redisClient = r }
func GetRedis() *redis.Client         { return redisClient }
func SetResolver(r identity.Resolver) { resolver = r }

// GetResolver falls back to the configured fixed user.
func GetResolver() identity.Resolver {
	if resolver != nil {
		return resolver
	}
	return identity.Fixed(cfg.CurrentUserID)
}
