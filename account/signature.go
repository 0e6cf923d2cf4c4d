// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/fault"
)

// Signature - detached ED25519 signature, hex in JSON
type Signature []byte

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - hex text, empty for a missing signature
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - decode a hex signature
//
// empty text gives a nil signature so that a missing field can be
// reported by the caller; anything else must be exactly one ED25519
// signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	if hex.EncodedLen(ed25519.SignatureSize) != len(s) {
		return fault.InvalidSignature
	}
	sig := make([]byte, ed25519.SignatureSize)
	if _, err := hex.Decode(sig, s); nil != err {
		return fault.InvalidSignature
	}
	*signature = sig
	return nil
}
