// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	KeymapCount *PoolHandle `prefix:"C"`
	Keymaps     *PoolHandle `prefix:"K"`
	OwnerCount  *PoolHandle `prefix:"N"`
	OwnerList   *PoolHandle `prefix:"L"`
	TestData    *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log    *logger.L
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return err
	}
	poolData.log.Infof("opened: %q  read only: %v", database, readOnly)

	return setup(db, readOnly)
}

// InitialiseInMemory - open a volatile database, for testing
func InitialiseInMemory() error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return err
	}
	return setup(db, ReadWrite)
}

// must hold the lock
func setup(db *leveldb.DB, readOnly bool) error {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		poolData.log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.IncompatibleDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			poolData.log.Critical("read only database has no version")
			return fault.IncompatibleDatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	access := newDA(db)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			access: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.db = db
	poolData.access = access
	poolData.trx = newTransaction(access)

	ok = true // prevent db close
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.access = nil
	poolData.trx = nil
	Pool = pools{}
}

// NewDBTransaction - start a transaction on the database
//
// only one transaction can be open at a time
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.DatabaseIsNotSet
	}

	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
