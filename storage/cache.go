// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// pendingWrites - values put by the open transaction, so that reads
// inside the transaction see them before commit
//
// entries never expire; the whole set is dropped on commit or abort
type pendingWrites struct {
	items *cache.Cache
}

func newPendingWrites() *pendingWrites {
	return &pendingWrites{
		items: cache.New(cache.NoExpiration, 0),
	}
}

// the value is copied so a caller reusing its buffer cannot change it
func (p *pendingWrites) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	p.items.Set(string(key), v, cache.NoExpiration)
}

func (p *pendingWrites) get(key []byte) ([]byte, bool) {
	obj, found := p.items.Get(string(key))
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (p *pendingWrites) has(key []byte) bool {
	_, found := p.items.Get(string(key))
	return found
}

func (p *pendingWrites) count() int {
	return p.items.ItemCount()
}

func (p *pendingWrites) clear() {
	p.items.Flush()
}
