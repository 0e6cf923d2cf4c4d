// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymaps

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Keymap
// ------

const (
	rateLimitKeymap = 100
	rateBurstKeymap = 50
)

// Keymap - type for the RPC
type Keymap struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry keymap.Keymap
	testing  bool
}

// RegisterReply - result of a registration
type RegisterReply struct {
	Filename keymap.Filename `json:"filename"`
}

// GetArguments - keymap to fetch
type GetArguments struct {
	Filename keymap.Filename `json:"filename"`
}

// GetReply - the stored keymap
type GetReply struct {
	Record *keymap.Record `json:"record"`
}

// New - create the RPC service
//
// testing selects the network that request accounts must belong to
func New(log *logger.L, registry keymap.Keymap, testing bool) *Keymap {
	return &Keymap{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitKeymap, rateBurstKeymap),
		Registry: registry,
		testing:  testing,
	}
}

// Register - create a keymap owned by the signer of the request
func (k *Keymap) Register(arguments *keymap.Request, reply *RegisterReply) error {

	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	if nil == k.Registry {
		return fault.DatabaseIsNotSet
	}

	log := k.Log
	log.Infof("Keymap.Register: owner: %s  filename: %s", arguments.Owner, arguments.Filename)

	owner, err := arguments.Authenticate(k.testing)
	if nil != err {
		log.Debugf("authenticate error: %s", err)
		return err
	}

	filename, err := k.Registry.Register(owner, arguments.Filename, arguments.Digest)
	if nil != err {
		log.Debugf("register: %s  error: %s", arguments.Filename, err)
		return err
	}

	reply.Filename = filename
	return nil
}

// Get - fetch a single keymap
func (k *Keymap) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	if nil == k.Registry {
		return fault.DatabaseIsNotSet
	}

	k.Log.Infof("Keymap.Get: %s", arguments.Filename)

	record, err := k.Registry.Get(arguments.Filename)
	if nil != err {
		return err
	}

	reply.Record = record
	return nil
}
