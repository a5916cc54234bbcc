package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/config"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// OpenSQLite opens a single-writer database file. Timestamps are stored in
// SQLite's own text format so they scan back into time.Time.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"

	db, err := sqlx.ConnectContext(ctx, DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: open sqlite %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	return db, nil
}

// Open connects with the configured driver and applies the schema.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err = OpenSQLite(ctx, cfg.SQLitePath)
	default:
		db, err = OpenPostgres(ctx, cfg.PostgresDSN())
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema matching the connection's driver. Every
// statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var file string
	switch db.DriverName() {
	case DriverPostgres, "postgres":
		file = "schema/postgres.sql"
	case DriverSQLite:
		file = "schema/sqlite.sql"
	default:
		return fmt.Errorf("repository: no schema for driver %q", db.DriverName())
	}

	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("repository: read schema: %w", err)
	}

	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("repository: migrate: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return false
}
