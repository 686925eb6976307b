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
	// Cache implements a container with limited size capacity and LRU (Least Recently Used)
	// pull out discipline. When a new key is put into the full cache, the key, which was not
	// touched by Put() or Get() for the longest time, is thrown away. The capacity is provided
	// via the Cache creation (see New) and stays the same for the whole Cache life.
	//
	// The Cache is not safe for the concurrent use.
	Cache[K comparable, V any] struct {
		capacity  int
		index     map[K]indexEntry[V]
		order     *recencyList[K]
		onDeleteF OnDeleteElemF[K, V]
	}

	// OnDeleteElemF a configuration type used for providing the function which will be
	// called for every element thrown away from the cache (evicted, removed or cleared)
	OnDeleteElemF[K any, V any] func(k K, v V)

	// indexEntry associates the stored value with the handle of the key node in the
	// recency list
	indexEntry[V any] struct {
		value V
		node  int
	}
)

// New creates the new Cache object with the capacity provided. It returns an error
// if the capacity is less than 1.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithOnDelete[K, V](capacity, nil)
}

// NewWithOnDelete creates the new Cache object, which will call onDeleteF for every
// element deleted from the cache. onDeleteF may be nil.
func NewWithOnDelete[K comparable, V any](capacity int, onDeleteF OnDeleteElemF[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("New(): the capacity=%d, but it cannot be less than 1", capacity)
	}
	c := new(Cache[K, V])
	c.capacity = capacity
	c.index = make(map[K]indexEntry[V], capacity)
	c.order = newRecencyList[K]()
	c.onDeleteF = onDeleteF
	return c, nil
}

// Put places the value v by the key k into the cache and makes the key the most
// recently used one. If the key is already in the cache, its value is replaced.
// If the key is new and the cache is full, the least recently used key is evicted
// before the insert. Put never fails.
func (c *Cache[K, V]) Put(k K, v V) {
	if e, ok := c.index[k]; ok {
		e.value = v
		c.index[k] = e
		c.order.moveToFront(e.node)
		return
	}
	if len(c.index) == c.capacity {
		c.evictBack()
	}
	h := c.order.pushFront(k)
	c.index[k] = indexEntry[V]{value: v, node: h}
}

// Get returns the value stored by the key k and makes the key the most recently
// used one. The second result is false if the key is not in the cache, this case
// the recency order of the cached keys is not affected.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	e, ok := c.index[k]
	if !ok {
		return *new(V), false
	}
	c.order.moveToFront(e.node)
	return e.value, true
}

// Peek returns the value stored by the key k without affecting the recency order
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	e, ok := c.index[k]
	if !ok {
		return *new(V), false
	}
	return e.value, true
}

// Contains returns whether the key k is in the cache. The recency order is not affected.
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.index[k]
	return ok
}

// Remove deletes the element by the key k. It returns true if the element was in
// the cache and false if it was not found
func (c *Cache[K, V]) Remove(k K) bool {
	e, ok := c.index[k]
	if !ok {
		return false
	}
	delete(c.index, k)
	c.order.remove(e.node)
	if c.onDeleteF != nil {
		c.onDeleteF(k, e.value)
	}
	return true
}

// Oldest returns the least recently used key and its value - the candidate for the
// next eviction. The recency order is not affected. The last result is false if the
// cache is empty.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	bk, ok := c.order.backKey()
	if !ok {
		return *new(K), *new(V), false
	}
	return bk, c.index[bk].value, true
}

// Len returns the number of the elements in the cache
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Capacity returns the maximum number of the elements the cache may hold
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Clear cleans up the cache removing all elements. The function will return number
// of the elements deleted
func (c *Cache[K, V]) Clear() int {
	removed := 0
	for {
		bk, ok := c.order.popBack()
		if !ok {
			break
		}
		e := c.index[bk]
		delete(c.index, bk)
		if c.onDeleteF != nil {
			c.onDeleteF(bk, e.value)
		}
		removed++
	}
	return removed
}

// Keys returns the cached keys ordered from the most recently used one to the
// least recently used one
func (c *Cache[K, V]) Keys() []K {
	res := make([]K, 0, len(c.index))
	for h := c.order.front; h != nilIdx; h = c.order.nodes[h].next {
		res = append(res, c.order.nodes[h].key)
	}
	return res
}

// evictBack throws away the least recently used element. The function is called
// for the full cache only, so the empty recency list here means that the index and
// the list diverged and the cache state is corrupted.
func (c *Cache[K, V]) evictBack() {
	bk, ok := c.order.popBack()
	if !ok {
		panic("Cache: eviction from the empty recency list, the cache state is corrupted")
	}
	e, ok := c.index[bk]
	if !ok {
		panic(fmt.Sprintf("Cache: the key=%v is in the recency list, but not in the index", bk))
	}
	delete(c.index, bk)
	if c.onDeleteF != nil {
		c.onDeleteF(bk, e.value)
	}
}
