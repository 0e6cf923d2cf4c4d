// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/keymapd/fault"
)

// MaximumDelay - a call that would queue longer than this is refused
const MaximumDelay = 5 * time.Second

// Limit - wait for one request slot
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait for count request slots
//
// a count outside 1…maximumCount is charged as a single request and
// then rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter, count)
}

// WaitN fails at once if n exceeds the burst or the slot lies beyond
// the deadline
func wait(limiter *rate.Limiter, n int) error {
	ctx, cancel := context.WithTimeout(context.Background(), MaximumDelay)
	defer cancel()

	if err := limiter.WaitN(ctx, n); nil != err {
		return fault.RateLimiting
	}
	return nil
}
