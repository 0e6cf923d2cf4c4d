// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/keymapd/chain"
	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/keymaps"
	"github.com/bitmark-inc/keymapd/rpc/node"
	"github.com/bitmark-inc/keymapd/rpc/owner"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, registry keymap.Keymap, chainName string, events node.Dropper) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(keymaps.New(log, registry, chain.IsTesting(chainName)))
	_ = server.Register(owner.New(log, registry))
	_ = server.Register(node.New(log, registry, start, version, chain.Normalise(chainName), rpcCount, events))

	return server
}
