// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/keymapd/fault"
)

const saltSize = 16

// Salt - random input to the password hash, one per identity
type Salt [saltSize]byte

// MakeSalt - fill a new salt from the system random source
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// Bytes - salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form of the salt
func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// MarshalText - convert salt to hex text
func (salt Salt) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(saltSize))
	hex.Encode(buffer, salt[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a salt
func (salt *Salt) UnmarshalText(s []byte) error {
	if hex.EncodedLen(saltSize) != len(s) {
		return fault.InvalidSalt
	}
	if _, err := hex.Decode(salt[:], s); nil != err {
		return fault.InvalidSalt
	}
	return nil
}
