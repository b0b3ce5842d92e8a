package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationURL переводит postgres:// DSN в схему драйвера pgx5 для golang-migrate
func MigrationURL(databaseURL string) string {
	switch {
	case strings.HasPrefix(databaseURL, "pgx5://"):
		return databaseURL
	case strings.HasPrefix(databaseURL, "postgresql://"):
		return "pgx5://" + strings.TrimPrefix(databaseURL, "postgresql://")
	default:
		return strings.Replace(databaseURL, "postgres://", "pgx5://", 1)
	}
}

// Migrate применяет все миграции из sourceURL (например file://migrations).
// Возвращает текущую версию схемы.
func Migrate(databaseURL, sourceURL string) (uint, error) {
	m, err := migrate.New(sourceURL, MigrationURL(databaseURL))
	if err != nil {
		return 0, fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
