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

// Transaction - all writes collected between Begin and Commit are
// applied to the database together
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - transaction over a single Access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - open the transaction, fails if it is already open
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - queue a key/value bytes pair
func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

// PutN - queue a big endian uint64 value
func (t *TransactionImpl) PutN(handle Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(handle.prefixKey(key), buffer)
}

// Get - read a value including any queued writes
func (t *TransactionImpl) Get(handle Handle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a big endian uint64 value including any queued writes
func (t *TransactionImpl) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

// Has - check a key including any queued writes
func (t *TransactionImpl) Has(handle Handle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write everything queued, then close the transaction
func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything queued, then close the transaction
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}
