package conform

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*Validator)
	registryMu sync.RWMutex
)

// For returns a cached validator derived from T's struct definition,
// building it with Struct[T] on first use. Derivation walks the struct via
// reflection, so hot paths should not rebuild validators per call.
func For[T any]() *Validator {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached
	}

	v := Struct[T]()
	registry[typ] = v
	return v
}

// Reset clears the derived-validator cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*Validator)
}
