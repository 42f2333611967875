package memory

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/zomato/internal/ports"
	"github.com/Gunvolt24/zomato/pkg/metrics"
)

// Проверка, что Store удовлетворяет интерфейсу ports.CacheStore.
var _ ports.CacheStore = (*Store)(nil)

const backend = "memory"

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time // нулевое значение — без срока
}

// Store — LRU-кэш с TTL на каждую запись.
// Истёкшие записи удаляются лениво: при чтении и при вставке (с хвоста списка).
type Store struct {
	capacity int // <= 0 — без ограничения
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// Option — настройка Store.
type Option func(*Store)

// WithClock — источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore — конструктор. capacity <= 0 отключает вытеснение по размеру.
func NewStore(capacity int, opts ...Option) *Store {
	s := &Store{
		capacity: capacity,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(backend, "miss").Inc()
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(backend, "expired").Inc()
		s.removeElement(elem)
		s.reportSize()
		return nil, false, nil
	}
	s.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues(backend, "hit").Inc()
	return cloneBytes(ent.value), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	metrics.CacheOps.WithLabelValues(backend, "set").Inc()

	if elem, ok := s.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = cloneBytes(value)
		ent.expiresAt = expiryFrom(now, ttl)
		s.ll.MoveToFront(elem)
		return nil
	}

	s.pruneExpiredFromBack(now)

	elem := s.ll.PushFront(&entry{
		key:       key,
		value:     cloneBytes(value),
		expiresAt: expiryFrom(now, ttl),
	})
	s.index[key] = elem

	if s.capacity > 0 && s.ll.Len() > s.capacity {
		s.evictLRU()
	}
	s.reportSize()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[key]; ok {
		s.removeElement(elem)
		metrics.CacheOps.WithLabelValues(backend, "delete").Inc()
		s.reportSize()
	}
	return nil
}

// ClearNamespace — удаляет все ключи с префиксом prefix (сравнение буквальное).
func (s *Store) ClearNamespace(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, elem := range s.index {
		if strings.HasPrefix(key, prefix) {
			s.removeElement(elem)
			removed++
		}
	}
	metrics.CacheOps.WithLabelValues(backend, "clear").Inc()
	s.reportSize()
	return removed, nil
}

// Len — число записей, включая ещё не удалённые истёкшие.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}
