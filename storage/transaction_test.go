// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/storage"
)

func TestBeginTwice(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin should not return any error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second begin should return error")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "abort did not release transaction")
	trx.Abort()
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}

func TestPutVisibleOnlyInsideTransaction(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData
	key := []byte("key")
	value := []byte("value")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(pool, key, value)

	assert.Equal(t, value, trx.Get(pool, key), "transaction cannot see its own write")
	assert.True(t, trx.Has(pool, key), "transaction Has missed its own write")
	assert.Nil(t, pool.Get(key), "uncommitted write visible outside transaction")
	assert.False(t, pool.Has(key), "uncommitted key visible outside transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Equal(t, value, pool.Get(key), "committed write not visible")
	assert.True(t, pool.Has(key), "committed key not visible")
}

func TestAbortDiscardsAllWrites(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(storage.Pool.Keymaps, []byte("one"), []byte("data"))
	trx.PutN(storage.Pool.KeymapCount, nil, 1)
	trx.PutN(storage.Pool.OwnerCount, []byte("owner"), 1)
	trx.Abort()

	assert.False(t, storage.Pool.Keymaps.Has([]byte("one")), "aborted record written")
	_, found := storage.Pool.KeymapCount.GetN(nil)
	assert.False(t, found, "aborted count written")
	_, found = storage.Pool.OwnerCount.GetN([]byte("owner"))
	assert.False(t, found, "aborted owner count written")

	// a fresh transaction must not see the aborted data
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.False(t, trx.Has(storage.Pool.Keymaps, []byte("one")), "aborted record still cached")
	trx.Abort()
}

func TestPutNGetN(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.KeymapCount

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	n, found := trx.GetN(pool, nil)
	assert.False(t, found, "empty pool has a count")
	assert.Equal(t, uint64(0), n, "wrong empty count")

	trx.PutN(pool, nil, 0x0102030405060708)
	n, found = trx.GetN(pool, nil)
	assert.True(t, found, "count not found in transaction")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong count in transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit")

	n, found = pool.GetN(nil)
	assert.True(t, found, "count not found after commit")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong count after commit")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, pool.Get(nil), "wrong byte order")
}

func TestCommitWithoutBegin(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.Nil(t, trx.Commit(), "first commit")
	assert.Equal(t, fault.TransactionNotStarted, trx.Commit(), "second commit should fail")
}
