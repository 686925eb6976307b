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

import "github.com/acquirecloud/lrucache/iterable"

type (
	// Entry implements a record in the Cache, which contains Key and the Value for the record
	Entry[K comparable, V any] struct {
		Key   K
		Value V
	}

	// cacheIterator provides an iterator pattern over the Cache entries. It implements
	// the iterable.Iterator interface
	cacheIterator[K comparable, V any] struct {
		c   *Cache[K, V]
		ptr int
	}
)

// Iterator returns the iterator over the cache entries ordered from the most recently
// used one to the least recently used one. The iterator does not affect the recency
// order. The cache must not be modified while the iterator is in use.
func (c *Cache[K, V]) Iterator() iterable.Iterator[Entry[K, V]] {
	return &cacheIterator[K, V]{c: c, ptr: c.order.front}
}

// HasNext returns true if the cache contains next element for the iterator. Please
// see Next() function
func (it *cacheIterator[K, V]) HasNext() bool {
	return it.ptr != nilIdx
}

// Next returns the next entry and shifts the iterator to the following one if it
// exists. This function returns default values for the Entry fields, if the next
// element does not exist (second parameter is false).
func (it *cacheIterator[K, V]) Next() (Entry[K, V], bool) {
	if it.ptr == nilIdx {
		return Entry[K, V]{}, false
	}
	n := &it.c.order.nodes[it.ptr]
	e := Entry[K, V]{Key: n.key, Value: it.c.index[n.key].value}
	it.ptr = n.next
	return e, true
}

// Close closes the iterator. The iterator object must not be used after the call.
func (it *cacheIterator[K, V]) Close() error {
	it.c = nil
	it.ptr = nilIdx
	return nil
}
