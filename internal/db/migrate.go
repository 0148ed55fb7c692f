package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// newMigrator берет из пула отдельное соединение. m.Close закрывает только его,
// сам пул остается открытым.
func newMigrator(ctx context.Context, database *sql.DB) (*migrate.Migrate, error) {
	src, err := migrationSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	conn, err := database.Conn(ctx)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		src.Close()
		return nil, fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		driver.Close()
		src.Close()
		return nil, fmt.Errorf("failed to init migrator: %w", err)
	}

	return m, nil
}

// Migrate применяет все еще не примененные up-миграции.
// Возвращает текущую версию схемы и признак того, что что-то было применено.
func Migrate(ctx context.Context, database *sql.DB) (uint, bool, error) {
	m, err := newMigrator(ctx, database)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	changed := true
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return 0, false, fmt.Errorf("failed to apply migrations: %w", err)
		}
		changed = false
	}

	version, _, err := m.Version()
	if err != nil {
		return 0, changed, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, changed, nil
}

// Rollback откатывает последнюю примененную миграцию по ее down-файлу.
// Версия 0 означает, что схема откатена полностью.
func Rollback(ctx context.Context, database *sql.DB) (uint, error) {
	m, err := newMigrator(ctx, database)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		return 0, fmt.Errorf("failed to roll back migration: %w", err)
	}

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, nil
}
