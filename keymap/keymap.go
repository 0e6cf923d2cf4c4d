// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymap

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	uint64ByteSize = 8

	// command name of the event sent after a record is created
	CreatedEvent = "created"
)

// Keymap - interface for the registry
type Keymap interface {
	Register(*account.Account, Filename, Digest) (Filename, error)
	Get(Filename) (*Record, error)
	ListFor(*account.Account, uint64, int) ([]Owned, error)
	Count() uint64
	MaxOwned() uint64
}

// Sender - receives events after a successful commit
//
// must not block
type Sender interface {
	Send(command string, parameters ...[]byte)
}

// Handles - the pools the registry reads
type Handles struct {
	KeymapCount storage.Handle
	Keymaps     storage.Handle
	OwnerCount  storage.Handle
	OwnerList   storage.Handle
}

// TransactionFunc - opens a write transaction
type TransactionFunc func() (storage.Transaction, error)

type keymap struct {
	sync.RWMutex // single lock covering all pools

	log            *logger.L
	pools          Handles
	maxOwned       uint64
	newTransaction TransactionFunc
	sender         Sender
}

var globalData struct {
	sync.RWMutex
	initialised bool
	registry    Keymap
}

// Initialise - create the global registry over the storage pools
func Initialise(maxOwned uint64, sender Sender) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	pools := Handles{
		KeymapCount: storage.Pool.KeymapCount,
		Keymaps:     storage.Pool.Keymaps,
		OwnerCount:  storage.Pool.OwnerCount,
		OwnerList:   storage.Pool.OwnerList,
	}

	registry, err := New(logger.New("keymap"), pools, maxOwned, storage.NewDBTransaction, sender)
	if nil != err {
		return err
	}

	globalData.registry = registry
	globalData.initialised = true
	return nil
}

// Finalise - release the global registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	globalData.registry = nil
	globalData.initialised = false
	return nil
}

// Get - return the global registry
func Get() Keymap {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.registry
}

// New - create a registry
//
// sender may be nil if no events are wanted
func New(log *logger.L, pools Handles, maxOwned uint64, newTransaction TransactionFunc, sender Sender) (Keymap, error) {
	if 0 == maxOwned {
		return nil, fault.InvalidMaxOwned
	}
	if nil == newTransaction {
		return nil, fault.DatabaseIsNotSet
	}
	return &keymap{
		log:            log,
		pools:          pools,
		maxOwned:       maxOwned,
		newTransaction: newTransaction,
		sender:         sender,
	}, nil
}

// an owner must decode from its own byte form, otherwise its key
// would not be a distinct prefix in the owner list
func checkOwner(owner *account.Account) ([]byte, error) {
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.InvalidAccount
	}
	ownerBytes := owner.Bytes()
	if _, err := account.AccountFromBytes(ownerBytes); nil != err {
		return nil, fault.InvalidAccount
	}
	return ownerBytes, nil
}

// Register - create a new record owned by owner
//
// checks run in order: duplicate filename, counter overflow, owner
// capacity; nothing is written unless all pass
func (k *keymap) Register(owner *account.Account, filename Filename, digest Digest) (Filename, error) {
	ownerBytes, err := checkOwner(owner)
	if nil != err {
		return filename, err
	}

	k.Lock()
	defer k.Unlock()

	trx, err := k.newTransaction()
	if nil != err {
		return filename, err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	if trx.Has(k.pools.Keymaps, filename[:]) {
		return filename, fault.DuplicateKeymap
	}

	count, _ := trx.GetN(k.pools.KeymapCount, nil)
	newCount, ok := counter.CheckedIncrement(count)
	if !ok {
		return filename, fault.Overflow
	}

	owned, _ := trx.GetN(k.pools.OwnerCount, ownerBytes)
	if owned >= k.maxOwned {
		return filename, fault.TooManyOwned
	}

	trx.Put(k.pools.Keymaps, filename[:], pack(digest, owner))
	trx.Put(k.pools.OwnerList, listKey(ownerBytes, owned), filename[:])
	trx.PutN(k.pools.OwnerCount, ownerBytes, owned+1)
	trx.PutN(k.pools.KeymapCount, nil, newCount)

	err = trx.Commit()
	committed = true
	if nil != err {
		k.log.Errorf("register: %s  commit error: %s", filename, err)
		return filename, err
	}

	k.log.Infof("created: %s  owner: %s  count: %d", filename, owner, newCount)

	if nil != k.sender {
		k.sender.Send(CreatedEvent, filename[:], ownerBytes)
	}

	return filename, nil
}

// Get - fetch a committed record
func (k *keymap) Get(filename Filename) (*Record, error) {
	k.RLock()
	defer k.RUnlock()

	buffer := k.pools.Keymaps.Get(filename[:])
	if nil == buffer {
		return nil, fault.KeymapNotFound
	}
	return unpack(filename, buffer)
}

// ListFor - fetch part of an owner's list in creation order
func (k *keymap) ListFor(owner *account.Account, start uint64, count int) ([]Owned, error) {
	ownerBytes, err := checkOwner(owner)
	if nil != err {
		return nil, err
	}

	k.RLock()
	defer k.RUnlock()

	cursor := k.pools.OwnerList.NewFetchCursor().Seek(listKey(ownerBytes, start)).Within(ownerBytes)

	// owner ⧺ n → filename
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Owned, 0, len(items))

	for _, item := range items {
		split := len(ownerBytes)
		if split+uint64ByteSize != len(item.Key) {
			logger.Panicf("keymap: owner list key has wrong length: %x", item.Key)
		}

		record := Owned{
			N: binary.BigEndian.Uint64(item.Key[split:]),
		}
		err := FilenameFromBytes(&record.Filename, item.Value)
		if nil != err {
			logger.Panicf("keymap: owner list value: %x  error: %s", item.Value, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Count - number of records created
func (k *keymap) Count() uint64 {
	k.RLock()
	defer k.RUnlock()

	n, _ := k.pools.KeymapCount.GetN(nil)
	return n
}

// MaxOwned - capacity of each owner's list
func (k *keymap) MaxOwned() uint64 {
	return k.maxOwned
}

// owner ⧺ n
func listKey(ownerBytes []byte, n uint64) []byte {
	key := make([]byte, len(ownerBytes)+uint64ByteSize)
	copy(key, ownerBytes)
	binary.BigEndian.PutUint64(key[len(ownerBytes):], n)
	return key
}
