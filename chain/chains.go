// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"
)

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case a chain name, an empty name selects the live chain
func Normalise(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return Live
	}
	return name
}

// IsTesting - true if accounts on this chain carry the test network bit
func IsTesting(name string) bool {
	switch name {
	case Testing, Local:
		return true
	default:
		return false
	}
}
