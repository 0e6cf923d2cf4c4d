// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/keymapd/fault"
)

// Authenticate - resolve a base58 account and check its signature
// over message
//
// testing selects the network the account must belong to
func Authenticate(owner string, message []byte, signature Signature, testing bool) (*Account, error) {
	a, err := AccountFromBase58(owner)
	if nil != err {
		return nil, err
	}

	if a.IsTesting() != testing {
		return nil, fault.WrongNetworkForPublicKey
	}

	err = a.CheckSignature(message, signature)
	if nil != err {
		return nil, err
	}
	return a, nil
}
