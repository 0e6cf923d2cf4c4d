// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues carrying events from the
// registry to background processes
//
// a send never blocks; when a queue is full the message is dropped
// and counted
package messagebus
