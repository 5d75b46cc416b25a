// Package cache provides the read cache sitting in front of the DynamoDB
// repositories. Reads are cached per key until a mutation explicitly
// invalidates them; concurrent readers of a cold key share one in-flight
// fetch. There is no TTL: staleness is driven entirely by invalidation.
package cache

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store is an invalidation-based read cache. One Store instance is created at
// wiring time and handed to every use case; mutations call InvalidateEntity
// so the next read refetches.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	gens    map[string]uint64
	group   singleflight.Group
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]any),
		gens:    make(map[string]uint64),
	}
}

// CollectionKey is the cache key for a full-table read of entity.
func CollectionKey(entity string) string {
	return entity
}

// ItemKey is the cache key for a single-row read.
func ItemKey(entity, id string) string {
	return entity + "/" + id
}

// Fetch returns the cached value for key, or runs load exactly once across
// concurrent callers and caches its result. Load errors are not cached, so
// a failed read is retried on the next call.
//
// A load that raced an invalidation must not resurrect the pre-mutation
// value: each key carries a generation that invalidation bumps, and the
// result of a load started under an older generation is handed to the
// waiting callers but never stored.
func Fetch[T any](ctx context.Context, s *Store, key string, load func(ctx context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	if cached, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return cached.(T), nil
	}
	gen := s.gens[key]
	// Record the key so InvalidateEntity's prefix walk sees in-flight loads.
	s.gens[key] = gen
	s.mu.Unlock()

	// The winning caller's context drives the fetch; late joiners share its
	// result and a caller going away does not cancel the request.
	v, err, _ := s.group.Do(key, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.gens[key] == gen {
			s.entries[key] = loaded
		}
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// InvalidateEntity drops the collection key and every item key of entity,
// and bumps their generations so any load currently in flight cannot write
// its pre-mutation result back.
func (s *Store) InvalidateEntity(entity string) {
	prefix := entity + "/"
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, entity)
	s.gens[entity]++
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	for k := range s.gens {
		if strings.HasPrefix(k, prefix) {
			s.gens[k]++
		}
	}
}

// InvalidateItem drops a single item key along with the entity's collection
// key (the collection embeds the item, so both are stale after a row change).
func (s *Store) InvalidateItem(entity, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, entity)
	delete(s.entries, ItemKey(entity, id))
	s.gens[entity]++
	s.gens[ItemKey(entity, id)]++
}
