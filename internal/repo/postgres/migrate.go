package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/zomato/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// gooseLogger — goose пишет через zap.
type gooseLogger struct{ sugar *zap.SugaredLogger }

func (l gooseLogger) Fatalf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l gooseLogger) Printf(format string, v ...any) { l.sugar.Infof(format, v...) }

// Migrate — применяет встроенные миграции (goose) поверх пула.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{sugar: log.Named("goose").Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
