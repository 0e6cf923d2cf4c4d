// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - read access to a pool, writes must go through a Transaction
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	NewFetchCursor() *FetchCursor
	prefixKey([]byte) []byte
}

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// returns nil if the key is not present
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.access {
		return nil
	}
	value, err := p.access.GetCommitted(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.access {
		return false
	}
	value, err := p.access.HasCommitted(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}
