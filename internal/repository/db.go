package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/RealZimboGuy/wkfport/internal/config"
	"github.com/RealZimboGuy/wkfport/internal/migrations"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// OpenDatabase migrates the configured store and opens a connection to it.
func OpenDatabase(s config.Settings) (*sql.DB, error) {
	switch s.DatabaseType {
	case config.DATABASE_TYPE_POSTGRES:
		return open("postgres", "postgres", s.DatabaseURL, s.DatabaseURL)
	case config.DATABASE_TYPE_MYSQL:
		//remove mysql:// prefix from url for the driver
		return open("mysql", "mysql", s.DatabaseURL, strings.Replace(s.DatabaseURL, "mysql://", "", 1))
	case config.DATABASE_TYPE_SQLLITE:
		return open("sqlite3", "sqlite3", "sqlite3://"+s.SqlLiteFileName, s.SqlLiteFileName)
	default:
		return nil, fmt.Errorf("unknown database type %q, expected one of POSTGRES, MYSQL, SQLLITE", s.DatabaseType)
	}
}

func open(driver, migrationsPath, migrateURL, dsn string) (*sql.DB, error) {
	slog.Info("Running migrations", "driver", driver)
	if err := RunMigrations(migrationsPath, migrateURL); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	slog.Info("Opening database", "driver", driver)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// RunMigrations applies the embedded schema of migrationsPath to dbURL.
func RunMigrations(migrationsPath string, dbURL string) error {
	sub, err := fs.Sub(migrations.FS, migrationsPath)
	if err != nil {
		return err
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
