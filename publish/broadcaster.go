// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/messagebus"
	"github.com/bitmark-inc/keymapd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heart"
	zapDomain         = "broadcast"
)

// the part of *zmq.Socket the broadcaster uses
type sender interface {
	SendMessage(parts ...interface{}) (int, error)
	Close() error
}

type broadcaster struct {
	log       *logger.L
	queue     <-chan messagebus.Message
	sockets   []sender
	heartbeat time.Duration
	sent      counter.Counter
	failed    counter.Counter
}

// bind PUB sockets for all addresses
func bind(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string) ([]sender, error) {
	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("start authentication error: %s", err)
		return nil, err
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}

	sockets := make([]sender, 0, 2)
	if nil != socket4 {
		sockets = append(sockets, socket4)
	}
	if nil != socket6 {
		sockets = append(sockets, socket6)
	}
	return sockets, nil
}

func (brdc *broadcaster) initialise(log *logger.L, queue <-chan messagebus.Message, sockets []sender, heartbeat time.Duration) {
	brdc.log = log
	brdc.queue = queue
	brdc.sockets = sockets
	brdc.heartbeat = heartbeat
}

// Run - wait for queued events or shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	ticker := time.NewTicker(brdc.heartbeat)
	defer ticker.Stop()

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  parameters: %x", item.Command, item.Parameters)
			brdc.send(item.Command, item.Parameters...)
		case now := <-ticker.C:
			timestamp := make([]byte, 8)
			binary.BigEndian.PutUint64(timestamp, uint64(now.Unix()))
			brdc.send(heartbeatCommand, timestamp)
		}
	}

	log.Infof("stopped  sent: %d  failed: %d", brdc.sent.Uint64(), brdc.failed.Uint64())
}

// send one multipart message on every socket
func (brdc *broadcaster) send(command string, parameters ...[]byte) {
	parts := make([]interface{}, 0, 1+len(parameters))
	parts = append(parts, command)
	for _, p := range parameters {
		parts = append(parts, p)
	}

	for _, socket := range brdc.sockets {
		_, err := socket.SendMessage(parts...)
		if nil != err {
			brdc.failed.Increment()
			brdc.log.Errorf("send: %s  error: %s", command, err)
			continue
		}
		brdc.sent.Increment()
	}
}

func (brdc *broadcaster) close() {
	for _, socket := range brdc.sockets {
		if err := socket.Close(); nil != err {
			brdc.log.Errorf("close error: %s", err)
		}
	}
	brdc.sockets = nil
}
