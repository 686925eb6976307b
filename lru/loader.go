// Copyright 2024 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package lru

import "fmt"

type (
	// Loader implements a read-through cache on top of the Cache. The elements are
	// created automatically if they are not found in the cache via the createNewF
	// function call, which is provided via the Loader creation (see NewLoader).
	//
	// Same as the Cache, the Loader is not safe for the concurrent use.
	Loader[K comparable, V any] struct {
		cache      *Cache[K, V]
		createNewF CreateElemF[K, V]
	}

	// CreateElemF function type for creating new cache elements
	CreateElemF[K any, V any] func(k K) (V, error)
)

// NewLoader creates the new Loader object. It expects the maximum cache capacity
// and the create new element function in the parameters
func NewLoader[K comparable, V any](capacity int, createNewF CreateElemF[K, V], onDeleteF OnDeleteElemF[K, V]) (*Loader[K, V], error) {
	if createNewF == nil {
		return nil, fmt.Errorf("NewLoader(): createNewF must not be nil")
	}
	c, err := NewWithOnDelete[K, V](capacity, onDeleteF)
	if err != nil {
		return nil, err
	}
	return &Loader[K, V]{cache: c, createNewF: createNewF}, nil
}

// GetOrCreate returns an existing cache element or creates the new one by its key.
// The created element is placed into the cache, so the following calls with the same
// key will not create it again while the key stays in the cache. If the createNewF
// returns an error, the error is returned to the caller and nothing is cached.
func (l *Loader[K, V]) GetOrCreate(k K) (V, error) {
	if v, ok := l.cache.Get(k); ok {
		return v, nil
	}
	v, err := l.createNewF(k)
	if err != nil {
		return v, err
	}
	l.cache.Put(k, v)
	return v, nil
}

// Remove deletes the element by key k. It returns true if the element
// was in the cache and false if it was not found
func (l *Loader[K, V]) Remove(k K) bool {
	return l.cache.Remove(k)
}

// Clear cleans up the cache removing all elements. The function will return number
// of the elements deleted
func (l *Loader[K, V]) Clear() int {
	return l.cache.Clear()
}

// Len returns the number of the elements in the cache
func (l *Loader[K, V]) Len() int {
	return l.cache.Len()
}
