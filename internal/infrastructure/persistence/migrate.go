package persistence

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/postgres"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema for the store's dialect. It runs on a
// dedicated connection that is closed before returning.
func (s *Store) Migrate(logger *logrus.Logger) error {
	driverName := sqliteDriverName
	if s.Dialect == DialectPostgres {
		driverName = postgres.DriverName
	}
	db, err := sql.Open(driverName, s.dsn)
	if err != nil {
		return err
	}

	var driver database.Driver
	switch s.Dialect {
	case DialectPostgres:
		driver, err = pgmigrate.WithInstance(db, &pgmigrate.Config{})
	case DialectSQLite:
		driver, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	default:
		err = fmt.Errorf("unsupported dialect %q", s.Dialect)
	}
	if err != nil {
		_ = db.Close()
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations/"+string(s.Dialect))
	if err != nil {
		_ = driver.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, string(s.Dialect), driver)
	if err != nil {
		_ = driver.Close()
		return err
	}
	defer func() { _, _ = m.Close() }()

	logger.WithField("dialect", s.Dialect).Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
