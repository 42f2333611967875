package ports

import (
	"context"
	"time"
)

// CacheStore — хранилище "ключ → байты" с TTL.
// Требования к реализации: потокобезопасность; истёкшая запись никогда не возвращается;
// ClearNamespace удаляет ровно ключи с заданным префиксом.
type CacheStore interface {
	// Set — сохранить значение; ttl <= 0 означает "без срока".
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get — (value, true, nil) при попадании, (nil, false, nil) при промахе/истечении.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	Delete(ctx context.Context, key string) error

	// ClearNamespace — удалить все ключи, начинающиеся с prefix; вернуть число удалённых.
	ClearNamespace(ctx context.Context, prefix string) (int, error)
}
