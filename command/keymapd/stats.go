// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/messagebus"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use next to registry and event bus sizes
func memstats(stop <-chan struct{}) {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		if registry := keymap.Get(); nil != registry {
			log.Infof("keymaps: %d", registry.Count())
		}
		queue := messagebus.Bus.Broadcast
		log.Infof("events queued: %d  dropped: %d", queue.Len(), queue.Dropped())

		select {
		case <-stop:
			return
		case <-time.After(statsDelay):
		}
	}
}
