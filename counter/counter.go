// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"math"
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer safe for concurrent update
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IncrementBelow - add 1 only if the current value is below limit
//
// the caller that gets true owns one unit and must Decrement it later
func (c *Counter) IncrementBelow(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// CheckedIncrement - value + 1 unless that would wrap
//
// second result is false on overflow, in which case the first
// result is the unchanged value
func CheckedIncrement(value uint64) (uint64, bool) {
	if math.MaxUint64 == value {
		return value, false
	}
	return value + 1, true
}
