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

// nilIdx marks the absence of a neighbor node in the arena
const nilIdx = -1

type (
	// recencyList keeps the cache keys ordered from the most recently used one (front)
	// to the least recently used one (back). The nodes are placed into the arena slice
	// and addressed by their stable slot indexes, which are handed out to the callers
	// as handles. The prev and next links are the plain slot indexes, so detaching a
	// node or promoting it to the front is a couple of index rewrites and never
	// requires a traversal.
	recencyList[K comparable] struct {
		nodes []lnode[K]
		// frees contains the indexes of the released slots, which will be re-used
		// by the following pushFront() calls
		frees []int
		front int
		back  int
	}

	lnode[K comparable] struct {
		key      K
		prev     int
		next     int
		released bool
	}
)

func newRecencyList[K comparable]() *recencyList[K] {
	return &recencyList[K]{front: nilIdx, back: nilIdx}
}

// pushFront places the new node with the key k to the front of the list and
// returns the handle to the node. The handle stays valid until the node is
// removed from the list.
func (rl *recencyList[K]) pushFront(k K) int {
	idx := rl.alloc()
	n := &rl.nodes[idx]
	n.key = k
	n.prev = nilIdx
	n.next = rl.front
	if rl.front != nilIdx {
		rl.nodes[rl.front].prev = idx
	} else {
		rl.back = idx
	}
	rl.front = idx
	return idx
}

// moveToFront makes the node, referred by the handle h, the most recently used one.
// The handle must refer to a node, which is still in the list, otherwise the
// function panics.
func (rl *recencyList[K]) moveToFront(h int) {
	rl.checkHandle(h)
	if rl.front == h {
		return
	}
	rl.unlink(h)
	n := &rl.nodes[h]
	n.next = rl.front
	rl.nodes[rl.front].prev = h
	rl.front = h
}

// remove detaches the node, referred by the handle h, from the list and releases
// its slot. The handle must not be used after the call.
func (rl *recencyList[K]) remove(h int) {
	rl.checkHandle(h)
	rl.unlink(h)
	rl.release(h)
}

// backKey returns the key of the least recently used node. The second result is
// false if the list is empty.
func (rl *recencyList[K]) backKey() (K, bool) {
	if rl.back == nilIdx {
		return *new(K), false
	}
	return rl.nodes[rl.back].key, true
}

// popBack removes the least recently used node and returns its key. The second
// result is false if the list is empty.
func (rl *recencyList[K]) popBack() (K, bool) {
	if rl.back == nilIdx {
		return *new(K), false
	}
	h := rl.back
	k := rl.nodes[h].key
	rl.unlink(h)
	rl.release(h)
	return k, true
}

// frontKey returns the key of the most recently used node. The second result is
// false if the list is empty.
func (rl *recencyList[K]) frontKey() (K, bool) {
	if rl.front == nilIdx {
		return *new(K), false
	}
	return rl.nodes[rl.front].key, true
}

func (rl *recencyList[K]) len() int {
	return len(rl.nodes) - len(rl.frees)
}

// unlink detaches the node from its neighbors patching their links and the list
// ends. The node slot itself stays allocated, its prev link is reset to nilIdx
func (rl *recencyList[K]) unlink(h int) {
	n := &rl.nodes[h]
	if n.prev != nilIdx {
		rl.nodes[n.prev].next = n.next
	} else {
		rl.front = n.next
	}
	if n.next != nilIdx {
		rl.nodes[n.next].prev = n.prev
	} else {
		rl.back = n.prev
	}
	n.prev, n.next = nilIdx, nilIdx
}

func (rl *recencyList[K]) alloc() int {
	if ln := len(rl.frees); ln > 0 {
		idx := rl.frees[ln-1]
		rl.frees = rl.frees[:ln-1]
		rl.nodes[idx].released = false
		return idx
	}
	rl.nodes = append(rl.nodes, lnode[K]{})
	return len(rl.nodes) - 1
}

func (rl *recencyList[K]) release(h int) {
	n := &rl.nodes[h]
	n.key = *new(K)
	n.released = true
	rl.frees = append(rl.frees, h)
}

// checkHandle panics if h does not refer to a node, which is currently in the list.
// Using a handle of an already removed node is a bug on the caller side, which must
// not be turned into a silent list corruption.
func (rl *recencyList[K]) checkHandle(h int) {
	if h < 0 || h >= len(rl.nodes) || rl.nodes[h].released {
		panic(fmt.Sprintf("recencyList: the handle=%d does not refer to a node in the list", h))
	}
}
