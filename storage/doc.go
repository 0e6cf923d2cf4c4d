// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes go through a Transaction, which accumulates them in a
// LevelDB batch so that every table changed by one operation is
// written in a single step, or not at all.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. filename = 16 byte keymap filename token
// 4. digest   = 16 byte keymap content digest
// 5. count    = big endian uint64 (8 bytes)
// 6. owner    = account bytes (key variant ++ 32 byte public key)
//
// Keymaps:
//
//	C                      - total number of keymaps ever created
//	                         data: count
//	K ++ filename          - keymap record
//	                         data: digest ++ owner
//
// Ownership:
//
//	N ++ owner             - number of keymaps owned, also the next list position
//	                         data: count
//	L ++ owner ++ count    - list of owned keymaps in insertion order
//	                         data: filename
//
// Testing:
//
//	Z ++ key               - testing data
package storage
