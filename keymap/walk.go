// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymap

import (
	"github.com/bitmark-inc/keymapd/storage"
)

// Walk - call f for every record in a keymaps pool in filename order
//
// reads committed data only, stops at the first error returned by f
func Walk(pool storage.Handle, f func(*Record) error) error {
	return pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var filename Filename
		if err := FilenameFromBytes(&filename, key); nil != err {
			return err
		}
		record, err := unpack(filename, value)
		if nil != err {
			return err
		}
		return f(record)
	})
}
