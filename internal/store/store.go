// Package store persists fetched metastore collections into the local
// mirror database: one insert-or-replace statement per record, keyed on
// the record's natural identity.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"metamirror/internal/logger"
)

// Dialect supplies the SQL for one mirror target. Each upsert statement
// binds the full persisted column set positionally; a key collision fully
// overwrites the existing row.
type Dialect interface {
	UpsertCatalog() string
	UpsertSchema() string
	UpsertTable() string

	// Placeholder returns the bind marker for the nth parameter (1-based).
	Placeholder(n int) string
}

var dialects = map[string]Dialect{}

// Register makes a Dialect available under name.
func Register(name string, d Dialect) {
	dialects[strings.ToLower(name)] = d
}

// RegisteredDialects returns the registered dialect keys (for diagnostics).
func RegisteredDialects() []string {
	keys := make([]string, 0, len(dialects))
	for k := range dialects {
		keys = append(keys, k)
	}
	return keys
}

// Store wraps the mirror connection pool and its dialect.
type Store struct {
	db      *sql.DB
	driver  string
	dialect Dialect
}

// Open connects to the mirror database and verifies the connection.
func Open(driver, dsn string, timeoutSec int) (*Store, error) {
	dialect, ok := dialects[strings.ToLower(driver)]
	if !ok {
		return nil, fmt.Errorf("dialect not registered: %q (available: %v)", driver, RegisteredDialects())
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, driver: driver, dialect: dialect}, nil
}

// DB returns the underlying *sql.DB for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies the DDL migrations from path against the active mirror
// target. The three mirror tables must exist before any write.
func (s *Store) Migrate(path string) error {
	var drv database.Driver
	var err error
	switch s.driver {
	case "sqlite":
		drv, err = migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	case "postgres":
		drv, err = migratepg.WithInstance(s.db, &migratepg.Config{})
	case "mysql":
		drv, err = migratemysql.WithInstance(s.db, &migratemysql.Config{})
	default:
		return fmt.Errorf("no migration driver for %q", s.driver)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, s.driver, drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied from %s", path)
	return nil
}
