package utern

import (
	"sync"
)

// Cache keeps computed models keyed by value of their inputs.
// Oldest entries are evicted first once capacity is reached.
// Stored models are private: callers always get their own copy.
type Cache struct {
	sync.Mutex
	capacity int
	models   map[modelKey]*Model
	order    []modelKey
	hits     int
	misses   int
}

// NewCache returns cache for given number of models (at least one)
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		models:   make(map[modelKey]*Model, capacity),
		order:    make([]modelKey, 0, capacity),
	}
}

func (cache *Cache) get(key modelKey) (*Model, bool) {
	cache.Lock()
	defer cache.Unlock()
	model, ok := cache.models[key]
	if !ok {
		cache.misses++
		return nil, false
	}
	cache.hits++
	return model.Clone(), true
}

func (cache *Cache) put(key modelKey, model *Model) {
	cache.Lock()
	defer cache.Unlock()
	if _, ok := cache.models[key]; ok {
		return
	}
	if len(cache.order) >= cache.capacity {
		oldest := cache.order[0]
		cache.order = cache.order[1:]
		delete(cache.models, oldest)
	}
	cache.models[key] = model.Clone()
	cache.order = append(cache.order, key)
}

// Len returns number of cached models
func (cache *Cache) Len() int {
	cache.Lock()
	defer cache.Unlock()
	return len(cache.models)
}

// Stats returns number of hits and misses
func (cache *Cache) Stats() (int, int) {
	cache.Lock()
	defer cache.Unlock()
	return cache.hits, cache.misses
}
