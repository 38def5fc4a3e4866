package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore кэш внутри процесса для запуска без Redis.
type MemoryStore struct {
	items *gocache.Cache
}

func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.items.Get(key)

	return ok, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := s.items.Get(key)
	if !ok {
		return nil, nil
	}

	body, _ := value.([]byte)

	return body, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	s.items.Set(key, value, ttl)

	return nil
}
