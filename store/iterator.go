package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/custody/errors"
)

// ReadAll consumes the iterator and returns every pair it yields.
func ReadAll(it Iterator) ([]Model, error) {
	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Pair(key, value))
	}
}

// ascendBtree returns all cached items (set or deleted) with a key in
// [start, end), in ascending order. A nil boundary is unbounded.
func ascendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var res []btree.Item
	collect := func(i btree.Item) bool {
		res = append(res, i)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return res
}

// mergeCached overlays cached items on top of the sorted pairs read from a
// backing store.
func mergeCached(below []Model, cached []btree.Item) []Model {
	res := make([]Model, 0, len(below)+len(cached))
	i, j := 0, 0
	for i < len(below) || j < len(cached) {
		if j == len(cached) {
			res = append(res, below[i])
			i++
			continue
		}

		key := cached[j].(keyer).Key()
		if i < len(below) {
			switch cmp := bytes.Compare(below[i].Key, key); {
			case cmp < 0:
				res = append(res, below[i])
				i++
				continue
			case cmp == 0:
				// Cached value shadows the backing store.
				i++
			}
		}

		if item, ok := cached[j].(setItem); ok {
			res = append(res, Pair(item.key, item.value))
		}
		j++
	}
	return res
}
