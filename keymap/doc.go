// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keymap - registry of keymap records
//
// each record binds a 16 byte filename to a 16 byte digest and a
// single owner account; the filename is unique for the life of the
// database
//
// storage pools used (see storage/doc.go):
//
//	C                 - count of records ever created
//	                    data: count
//	K ⧺ filename      - the record
//	                    data: digest ⧺ owner
//	N ⧺ owner         - number of records owned, also the next list position
//	                    data: count
//	L ⧺ owner ⧺ n     - list of owned filenames in creation order
//	                    data: filename
//
// all four pools are written by a single batch so a failed
// registration leaves every pool unchanged
package keymap
