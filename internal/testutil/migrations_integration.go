//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Gunvolt24/zomato/internal/repo/postgres"
)

// ApplyMigrations — применяет встроенные миграции к базе из контейнера.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := pgrepo.Migrate(ctx, pool, nil); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Truncate — очищает все таблицы между тестами.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE reviews, order_items, orders, menu_items, customers, restaurants RESTART IDENTITY CASCADE
	`)
	return err
}
