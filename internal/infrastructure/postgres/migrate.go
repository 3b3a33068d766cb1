package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate aplica las migraciones SQL embebidas contra la base del pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	sqlDB, err := goose.OpenDBWithDriver("pgx", pool.Config().ConnConfig.ConnString())
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer sqlDB.Close()

	return goose.UpContext(ctx, sqlDB, "migrations")
}
