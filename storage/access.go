// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/keymapd/fault"
)

// Access - low level database access with a single pending batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	HasCommitted([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - LevelDB implementation of Access
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending *pendingWrites
}

func newDA(db *leveldb.DB) Access {
	return &AccessData{
		inUse:   false,
		db:      db,
		batch:   new(leveldb.Batch),
		pending: newPendingWrites(),
	}
}

// Begin - start collecting writes
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}

	d.inUse = true
	return nil
}

// Put - queue a write in the batch
func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	d.pending.put(key, value)
	d.batch.Put(key, value)
}

// Commit - write the whole batch in one step
//
// the batch is discarded whether or not the write succeeds
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}

	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

// Abort - discard all queued writes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

// must hold the lock
func (d *AccessData) reset() {
	d.batch.Reset()
	d.pending.clear()
	d.inUse = false
}

// Get - read a value, seeing queued writes first
func (d *AccessData) Get(key []byte) ([]byte, error) {
	if val, found := d.pending.get(key); found {
		return val, nil
	}
	return d.db.Get(key, nil)
}

// GetCommitted - read a value ignoring any queued writes
func (d *AccessData) GetCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// Has - check a key, seeing queued writes first
func (d *AccessData) Has(key []byte) (bool, error) {
	if d.pending.has(key) {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// HasCommitted - check a key ignoring any queued writes
func (d *AccessData) HasCommitted(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

// Iterator - iterate over committed data
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
