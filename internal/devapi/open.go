package devapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// StoreOptions selects the repository backing the dev API.
type StoreOptions struct {
	// DatabaseURL is a postgres DSN. Empty means in-memory storage.
	DatabaseURL string
	// MigrationsDir holds the golang-migrate SQL files.
	MigrationsDir string
	// ConnectAttempts is how many times to ping before giving up.
	ConnectAttempts int
	RetryDelay      time.Duration
}

// OpenRepository returns a postgres repository when a database is configured
// and reachable, and the in-memory one otherwise. The returned close func
// is never nil.
func OpenRepository(ctx context.Context, opts StoreOptions) (Repository, func() error, error) {
	noop := func() error { return nil }
	if opts.DatabaseURL == "" {
		log.Info("DATABASE_URL not set, using in-memory storage")
		return NewMemoryRepository(), noop, nil
	}
	if opts.ConnectAttempts <= 0 {
		opts.ConnectAttempts = 10
	}

	db, err := connect(ctx, opts)
	if err != nil {
		log.WithError(err).Warn("could not connect to database, continuing with in-memory storage")
		return NewMemoryRepository(), noop, nil
	}
	log.Info("connected to database")

	if err := Migrate(opts.DatabaseURL, opts.MigrationsDir); err != nil {
		db.Close()
		return nil, noop, err
	}
	return NewPostgresRepository(db), db.Close, nil
}

func connect(ctx context.Context, opts StoreOptions) (*sql.DB, error) {
	db, err := sql.Open("postgres", opts.DatabaseURL)
	if err != nil {
		return nil, err
	}
	for i := 0; i < opts.ConnectAttempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			return db, nil
		}
		log.WithFields(log.Fields{"attempt": i + 1, "of": opts.ConnectAttempts}).Info("waiting for database")
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}
	db.Close()
	return nil, err
}

// Migrate applies every pending up migration in dir.
func Migrate(databaseURL, dir string) error {
	if dir == "" {
		dir = "migrations"
	}
	m, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	log.WithField("dir", dir).Info("migrations applied")
	return nil
}
