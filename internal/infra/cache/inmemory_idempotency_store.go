package cache

import (
	"context"
	"sync"
	"time"

	"photoverify/internal/domain/service"
)

const cleanupInterval = time.Minute

type entry struct {
	value     string
	expiresAt time.Time
}

// inMemoryIdempotencyStore serves single-instance deployments and development.
type inMemoryIdempotencyStore struct {
	mu        sync.RWMutex
	entries   map[string]entry
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates the store and starts its expiry sweeper.
func NewInMemoryIdempotencyStore() service.IdempotencyStore {
	return newInMemoryIdempotencyStore(time.Now)
}

func newInMemoryIdempotencyStore(now func() time.Time) *inMemoryIdempotencyStore {
	store := &inMemoryIdempotencyStore{
		entries:  make(map[string]entry),
		now:      now,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

func (s *inMemoryIdempotencyStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[key]
	if !exists || !s.now().Before(e.expiresAt) {
		return "", false, nil
	}

	return e.value, true, nil
}

func (s *inMemoryIdempotencyStore) Remember(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, exists := s.entries[key]; exists && now.Before(e.expiresAt) {
		return false, nil
	}

	s.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}

	return true, nil
}

func (s *inMemoryIdempotencyStore) Forget(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *inMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})

	return nil
}

func (s *inMemoryIdempotencyStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *inMemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}
