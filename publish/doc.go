// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - ZeroMQ PUB broadcaster for registry events
//
// each message is multipart:
//
//	"created" ⧺ filename ⧺ owner
//	"heart"   ⧺ unix time (8 bytes, big endian)
package publish
