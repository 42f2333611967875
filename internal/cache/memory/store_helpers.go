package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/zomato/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (s *Store) evictLRU() {
	if back := s.ll.Back(); back != nil {
		s.removeElement(back)
		metrics.CacheOps.WithLabelValues(backend, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (s *Store) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(s.index, ent.key)
	s.ll.Remove(elem)
}

// pruneExpiredFromBack — удаляет истёкшие элементы с хвоста до первого актуального.
// Записи без срока останавливают проход.
func (s *Store) pruneExpiredFromBack(now time.Time) {
	for {
		back := s.ll.Back()
		if back == nil {
			return
		}
		if !isExpired(back.Value.(*entry), now) {
			return
		}
		s.removeElement(back)
		metrics.CacheOps.WithLabelValues(backend, "expired").Inc()
	}
}

func (s *Store) reportSize() {
	metrics.CacheSize.Set(float64(len(s.index)))
}

// isExpired — запись истекла, если срок задан и now не раньше него.
func isExpired(ent *entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return !now.Before(ent.expiresAt)
}

// expiryFrom — момент истечения; ttl <= 0 — без срока.
func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// cloneBytes — копия значения, чтобы внешние изменения не отражались на кэше.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
