// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Dropper - reports events lost from a full queue
type Dropper interface {
	Dropped() uint64
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry keymap.Keymap
	chain    string
	counter  *counter.Counter
	events   Dropper
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string `json:"chain"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	RPCs          uint64 `json:"rpcs"`
	Keymaps       uint64 `json:"keymaps,string"`
	MaxOwned      uint64 `json:"maxOwned"`
	DroppedEvents uint64 `json:"droppedEvents"`
}

// New - create the RPC service
func New(log *logger.L, registry keymap.Keymap, start time.Time, version string, chainName string, counter *counter.Counter, events Dropper) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: registry,
		chain:    chainName,
		counter:  counter,
		events:   events,
	}
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Registry {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = node.chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}
	reply.Keymaps = node.Registry.Count()
	reply.MaxOwned = node.Registry.MaxOwned()
	if nil != node.events {
		reply.DroppedEvents = node.events.Dropped()
	}
	return nil
}
