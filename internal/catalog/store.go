// Package catalog stores named supplier catalogs between requests. This is
// the explicit, keyed replacement for remembering the last uploaded supplier
// table in process-wide state: every catalog lives under a caller-chosen id
// and is passed into a calculation by reference. The store is a convenience;
// /calculate works without it.
package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/TiwariPiyush2510/Par-Stock/internal/config"
	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
)

type Store interface {
	Save(ctx context.Context, id string, cat domain.SupplierCatalog) error
	Get(ctx context.Context, id string) (domain.SupplierCatalog, bool, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// NewStore returns a redis-backed store when caching is enabled, otherwise an
// in-process map behind the same interface.
func NewStore(cfg config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		return NewMemoryStore(), nil
	}
	return newRedisStore(cfg)
}

type memoryStore struct {
	mu       sync.RWMutex
	catalogs map[string]domain.SupplierCatalog
}

func NewMemoryStore() Store {
	return &memoryStore{catalogs: make(map[string]domain.SupplierCatalog)}
}

func (s *memoryStore) Save(_ context.Context, id string, cat domain.SupplierCatalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs[id] = cat
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (domain.SupplierCatalog, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.catalogs[id]
	return cat, ok, nil
}

func (s *memoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.catalogs))
	for id := range s.catalogs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.catalogs, id)
	return nil
}
