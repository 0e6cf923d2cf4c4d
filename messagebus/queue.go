// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/keymapd/counter"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a queued item
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a bounded queue of messages
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// set of queues
type busses struct {
	Broadcast *Queue // events for the publisher
}

// Bus - all available queues
var Bus = busses{
	Broadcast: NewQueue(defaultQueueSize),
}

// NewQueue - create a queue holding at most size messages
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, dropping it if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}

// Len - number of messages waiting
func (queue *Queue) Len() int {
	return len(queue.c)
}
