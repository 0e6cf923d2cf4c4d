// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry keymap.Keymap
}

// Owner keymaps
// -------------

const (
	MaximumKeymapsCount = 100
	rateLimitOwner      = 200
	rateBurstOwner      = 100
)

// KeymapsArguments - arguments for RPC
type KeymapsArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first record number
	Count int              `json:"count"`        // number of records
}

// KeymapsReply - result of owner RPC
type KeymapsReply struct {
	Next     uint64         `json:"next,string"` // Start value for the next call
	MaxOwned uint64         `json:"maxOwned"`
	Data     []keymap.Owned `json:"data"`
}

// New - create the RPC service
func New(log *logger.L, registry keymap.Keymap) *Owner {
	return &Owner{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Registry: registry,
	}
}

// Keymaps - list keymaps belonging to an account
func (owner *Owner) Keymaps(arguments *KeymapsArguments, reply *KeymapsReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumKeymapsCount); nil != err {
		return err
	}

	if nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.InvalidAccount
	}

	if nil == owner.Registry {
		return fault.DatabaseIsNotSet
	}

	log := owner.Log
	log.Infof("Owner.Keymaps: %+v", arguments)

	data, err := owner.Registry.ListFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Data = data
	reply.MaxOwned = owner.Registry.MaxOwned()

	// nothing found: stay at the same start
	if 0 == len(data) {
		reply.Next = arguments.Start
	} else {
		reply.Next = data[len(data)-1].N + 1
	}

	return nil
}
