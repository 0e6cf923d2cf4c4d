// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/keymapd/background"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/messagebus"
	"github.com/bitmark-inc/keymapd/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - publisher block of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast sockets and start draining queue
//
// with no broadcast addresses the queue is drained and discarded
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	var sockets []sender
	if 0 != len(configuration.Broadcast) {
		privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key: %x", publicKey)

		sockets, err = bind(globalData.log, privateKey, publicKey, configuration.Broadcast)
		if nil != err {
			return err
		}
	} else {
		globalData.log.Warn("no broadcast addresses: events are discarded")
	}

	globalData.brdc.initialise(logger.New("broadcaster"), queue.Chan(), sockets, heartbeatInterval)

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the broadcaster and close its sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.brdc.close()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
