package scoring

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAlgorithm is returned by Resolve for unregistered keys.
var ErrUnknownAlgorithm = errors.New("scoring: unknown algorithm")

// Registry maps configuration keys to Recommenders. Lookups happen once at
// configuration time; the engine keeps the resolved value.
type Registry struct {
	mu   sync.RWMutex
	recs map[string]Recommender
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{recs: make(map[string]Recommender)}
}

// Register binds key to rec, replacing any previous binding.
func (r *Registry) Register(key string, rec Recommender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs[key] = rec
}

// Resolve returns the Recommender bound to key.
func (r *Registry) Resolve(key string) (Recommender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}

	return rec, nil
}

// Keys lists registered keys in ascending order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.recs))
	for k := range r.recs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
