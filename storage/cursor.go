// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/keymapd/fault"
)

// FetchCursor - a moving window over the committed keys of one pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // included
			Limit: p.limit,          // excluded
		},
	}
}

// Seek - move cursor to the first key not less than key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Within - restrict the cursor to keys that start with prefix
//
// a start position already past the prefix is kept
func (cursor *FetchCursor) Within(prefix []byte) *FetchCursor {
	r := util.BytesPrefix(cursor.pool.prefixKey(prefix))
	if bytes.Compare(cursor.maxRange.Start, r.Start) < 0 {
		cursor.maxRange.Start = r.Start
	}
	if nil != r.Limit && (nil == cursor.maxRange.Limit || bytes.Compare(r.Limit, cursor.maxRange.Limit) < 0) {
		cursor.maxRange.Limit = r.Limit
	}
	return cursor
}

// Fetch - return up to count elements and advance past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(func(e Element) (bool, error) {
		results = append(results, e)
		return len(results) < count, nil
	})

	// next fetch starts just after the last key returned
	if n := len(results); n > 0 {
		cursor.maxRange.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range, stopping at its
// first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	return cursor.each(func(e Element) (bool, error) {
		if err := f(e.Key, e.Value); nil != err {
			return false, err
		}
		return true, nil
	})
}

// visit each element in range until f says stop
func (cursor *FetchCursor) each(f func(Element) (bool, error)) error {
	if nil == cursor.pool.access {
		return nil
	}

	iter := cursor.pool.access.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		more, err := f(copyElement(iter))
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}

// iterator slices are only valid until the next move, so copy them out
// without the pool prefix
func copyElement(iter iterator.Iterator) Element {
	key := iter.Key()
	value := iter.Value()

	e := Element{
		Key:   make([]byte, len(key)-1),
		Value: make([]byte, len(value)),
	}
	copy(e.Key, key[1:])
	copy(e.Value, value)
	return e
}
