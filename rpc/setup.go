// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/messagebus"
	"github.com/bitmark-inc/keymapd/rpc/certificate"
	"github.com/bitmark-inc/keymapd/rpc/listeners"
	"github.com/bitmark-inc/keymapd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners over the global registry
func Initialise(configuration *listeners.RPCConfiguration, version string, chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	registry := keymap.Get()
	if nil == registry {
		return fault.NotInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.GetFiles(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &connectionCountRPC, registry, chainName, messagebus.Bus.Broadcast)

	listener, err := listeners.NewRPC(configuration, log, &connectionCountRPC, s, tlsConfig, certificateFingerprint)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		return err
	}

	globalData.listener = listener
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	err := globalData.listener.Close()
	if nil != err {
		globalData.log.Errorf("close error: %s", err)
	}

	globalData.listener = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
