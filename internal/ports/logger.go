package ports

import "context"

// Logger — логгер сервисов, кэша и консьюмера Kafka.
// Реализация сама дописывает к записи request_id и trace/span из ctx.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
