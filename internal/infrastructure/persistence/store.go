package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/postgres"
)

// Dialect names the SQL backend a Store talks to.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqliteDriverName = "sqlite"

// Options selects and tunes the backend. An empty DatabaseURL selects SQLite.
type Options struct {
	DatabaseURL string
	SQLitePath  string
	MaxConns    int32
	MinConns    int32
	MaxConnLife time.Duration
}

// Store owns the shared connection pool used by every repository.
type Store struct {
	DB      *sqlx.DB
	Dialect Dialect

	dsn  string
	pool *pgxpool.Pool
}

// Open connects to PostgreSQL when opts.DatabaseURL is set and falls back to
// the SQLite file at opts.SQLitePath otherwise.
func Open(ctx context.Context, opts Options, logger *logrus.Logger) (*Store, error) {
	if opts.DatabaseURL == "" {
		logger.WithField("path", opts.SQLitePath).Info("DATABASE_URL not set, using sqlite store")
		return OpenSQLite(opts.SQLitePath)
	}

	pool, err := postgres.NewPool(ctx, opts.DatabaseURL, opts.MaxConns, opts.MinConns, opts.MaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("connected to postgres")
	return &Store{
		DB:      postgres.OpenDB(pool),
		Dialect: DialectPostgres,
		dsn:     opts.DatabaseURL,
		pool:    pool,
	}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file with foreign
// keys enforced on every connection.
func OpenSQLite(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	dsn := sqliteDSN(path)
	db, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer; one connection keeps transactions from
	// tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{DB: db, Dialect: DialectSQLite, dsn: dsn}, nil
}

func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close releases the database handle and, for PostgreSQL, the pgx pool.
func (s *Store) Close() error {
	err := s.DB.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

type txKey struct{}

// ext returns the transaction carried by ctx, or db when there is none.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
