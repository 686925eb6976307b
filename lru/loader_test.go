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

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoader(t *testing.T) {
	l, err := NewLoader[string, string](1, func(k string) (string, error) {
		return "bb", nil
	}, nil)
	assert.Nil(t, err)
	r, err := l.GetOrCreate("aa")
	assert.Equal(t, "bb", r)
	assert.Nil(t, err)

	_, err = NewLoader[string, string](0, func(k string) (string, error) { return "", nil }, nil)
	assert.NotNil(t, err)
	_, err = NewLoader[string, string](1, nil, nil)
	assert.NotNil(t, err)
}

func TestLoader_GetOrCreateSimple(t *testing.T) {
	cnt := 0
	l, err := NewLoader[string, int](1, func(k string) (int, error) {
		cnt++
		return cnt, nil
	}, nil)
	assert.Nil(t, err)

	r, err := l.GetOrCreate("aa")
	assert.Equal(t, 1, r)
	assert.Nil(t, err)

	r, err = l.GetOrCreate("aa")
	assert.Equal(t, 1, r)
	assert.Nil(t, err)
	assert.Equal(t, 1, cnt)

	r, err = l.GetOrCreate("bb")
	assert.Equal(t, 2, r)
	assert.Nil(t, err)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, cnt)
}

func TestLoader_GetOrCreateError(t *testing.T) {
	cnt := 0
	l, err := NewLoader[int, int](2, func(k int) (int, error) {
		cnt++
		return 0, os.ErrClosed
	}, nil)
	assert.Nil(t, err)

	for i := 0; i < 10; i++ {
		_, err := l.GetOrCreate(1)
		assert.ErrorIs(t, err, os.ErrClosed)
	}
	assert.Equal(t, 10, cnt)
	assert.Equal(t, 0, l.Len())
}

func TestLoader_CheckOrder(t *testing.T) {
	l, err := NewLoader[int, int](10, func(k int) (int, error) {
		return k, nil
	}, nil)
	assert.Nil(t, err)

	for i := 0; i < 20; i++ {
		l.GetOrCreate(i)
	}
	assert.Equal(t, 10, l.Len())

	keys := l.cache.Keys()
	cnt := 19
	for _, k := range keys {
		assert.Equal(t, cnt, k)
		v, ok := l.cache.Peek(k)
		assert.True(t, ok)
		assert.Equal(t, k, v)
		cnt--
	}
}

func TestLoader_CheckDelete(t *testing.T) {
	deleted := []int{}
	l, err := NewLoader[int, int](10, func(k int) (int, error) {
		return k, nil
	}, func(k, v int) {
		deleted = append(deleted, v)
	})
	assert.Nil(t, err)

	for i := 0; i < 20; i++ {
		l.GetOrCreate(i)
	}
	assert.Equal(t, 10, l.Len())

	assert.Equal(t, 10, len(deleted))
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, deleted[i])
	}
}

func TestLoader_Remove(t *testing.T) {
	cnt := 0
	l, err := NewLoader[int, int](2, func(k int) (int, error) {
		cnt++
		return cnt, nil
	}, nil)
	assert.Nil(t, err)

	v, _ := l.GetOrCreate(1)
	assert.Equal(t, 1, v)
	assert.True(t, l.Remove(1))
	assert.False(t, l.Remove(1))

	// the removed key must be created again on the next request
	v, _ = l.GetOrCreate(1)
	assert.Equal(t, 2, v)
}

func TestLoader_Clear(t *testing.T) {
	l, _ := NewLoader[int, int](5, func(k int) (int, error) {
		return k, nil
	}, nil)

	for i := 0; i < 5; i++ {
		l.GetOrCreate(i)
	}
	assert.Equal(t, 5, l.Clear())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Clear())
}
