package store

import (
	"testing"

	"github.com/iov-one/custody/custodytest/assert"
)

func TestIteratorMergesCacheAndParent(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "c", "e", "g"} {
		assert.Nil(t, base.Set([]byte(k), []byte("base-"+k)))
	}

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("cache-b")))
	assert.Nil(t, cache.Set([]byte("c"), []byte("cache-c")))
	assert.Nil(t, cache.Delete([]byte("e")))
	assert.Nil(t, cache.Set([]byte("h"), []byte("cache-h")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		want       []Model
	}{
		"all": {
			want: []Model{
				Pair([]byte("a"), []byte("base-a")),
				Pair([]byte("b"), []byte("cache-b")),
				Pair([]byte("c"), []byte("cache-c")),
				Pair([]byte("g"), []byte("base-g")),
				Pair([]byte("h"), []byte("cache-h")),
			},
		},
		"bounded": {
			start: []byte("b"),
			end:   []byte("g"),
			want: []Model{
				Pair([]byte("b"), []byte("cache-b")),
				Pair([]byte("c"), []byte("cache-c")),
			},
		},
		"open start": {
			end: []byte("c"),
			want: []Model{
				Pair([]byte("a"), []byte("base-a")),
				Pair([]byte("b"), []byte("cache-b")),
			},
		},
		"open end reversed": {
			start:   []byte("f"),
			reverse: true,
			want: []Model{
				Pair([]byte("h"), []byte("cache-h")),
				Pair([]byte("g"), []byte("base-g")),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			assert.Nil(t, err)
			defer it.Release()

			got, err := ReadAll(it)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEmptyIterator(t *testing.T) {
	it, err := MemStore().Iterator(nil, nil)
	assert.Nil(t, err)
	got, err := ReadAll(it)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(got))
}
