// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC over TLS for keymapd clients
//
// services:
//
//	Keymap.Register  - signed registration of a new keymap
//	Keymap.Get       - fetch one keymap
//	Owner.Keymaps    - page through the keymaps of an account
//	Node.Info        - daemon status
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc
