// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keymapd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: [][]byte{{0x01}},
		},
		{
			Command:    "c2",
			Parameters: [][]byte{{0x02}, {0x03, 0x04}},
		},
		{
			Command:    "c3",
			Parameters: nil,
		},
	}

	queue := messagebus.NewQueue(10)

	for _, item := range items {
		queue.Send(item.Command, item.Parameters...)
	}
	assert.Equal(t, len(items), queue.Len(), "wrong queue length")

	c := queue.Chan()
	for _, item := range items {
		received := <-c
		if received.Command != item.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
		}
		if len(received.Parameters) != len(item.Parameters) {
			t.Errorf("actual: %d parameters  expected: %d", len(received.Parameters), len(item.Parameters))
		}
	}
	assert.Equal(t, uint64(0), queue.Dropped(), "wrong dropped count")
}

func TestQueueFull(t *testing.T) {
	const size = 4
	queue := messagebus.NewQueue(size)

	// none of these may block
	for i := 0; i < size+3; i += 1 {
		queue.Send("item", []byte{byte(i)})
	}

	assert.Equal(t, size, queue.Len(), "wrong queue length")
	assert.Equal(t, uint64(3), queue.Dropped(), "wrong dropped count")

	// oldest are kept
	for i := 0; i < size; i += 1 {
		m := <-queue.Chan()
		assert.Equal(t, []byte{byte(i)}, m.Parameters[0], "wrong item: %d", i)
	}
}

func TestQueueConcurrentSend(t *testing.T) {
	const senders = 8
	const each = 50
	queue := messagebus.NewQueue(100)

	var wg sync.WaitGroup
	for i := 0; i < senders; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				queue.Send("x")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(senders*each), uint64(queue.Len())+queue.Dropped(), "messages lost without being counted")
}

func TestDefaultSize(t *testing.T) {
	queue := messagebus.NewQueue(0)
	queue.Send("a")
	assert.Equal(t, 1, queue.Len(), "wrong queue length")
	assert.NotNil(t, messagebus.Bus.Broadcast, "missing broadcast queue")
}
