package storage

import "sync"

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Storage is a generic key-value storage.
type Storage[K comparable, V any] interface {

	// Get returns the value associated with the key.
	// If the key is not found, it returns the zero value of the value type and false.
	Get(key K) (V, bool)

	// Set sets/updates the value associated with the key.
	Set(key K, value V)

	// Delete deletes the value associated with the key.
	Delete(key K)

	// Len returns the number of elements in the storage.
	Len() int

	// GetAll returns all elements in the storage, in no particular order.
	GetAll() []Pair[K, V]
}

// InMemoryStorage is a map guarded by a mutex, safe for concurrent use.
type InMemoryStorage[K comparable, V any] struct {
	mu      sync.RWMutex
	storage map[K]V
}

func NewInMemoryStorage[K comparable, V any]() Storage[K, V] {
	return &InMemoryStorage[K, V]{storage: make(map[K]V)}
}

func (i *InMemoryStorage[K, V]) Get(key K) (V, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	value, ok := i.storage[key]
	return value, ok
}

func (i *InMemoryStorage[K, V]) Set(key K, value V) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.storage[key] = value
}

func (i *InMemoryStorage[K, V]) Delete(key K) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.storage, key)
}

func (i *InMemoryStorage[K, V]) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.storage)
}

func (i *InMemoryStorage[K, V]) GetAll() []Pair[K, V] {
	i.mu.RLock()
	defer i.mu.RUnlock()

	pairs := make([]Pair[K, V], 0, len(i.storage))
	for key, value := range i.storage {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
	}

	return pairs
}
