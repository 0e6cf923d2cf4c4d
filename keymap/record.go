// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymap

import (
	"encoding/hex"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
)

// byte sizes of the fixed fields
const (
	FilenameLength = 16
	DigestLength   = 16
)

// Filename - primary key of a keymap record
type Filename [FilenameLength]byte

// Digest - opaque content digest stored with a record
type Digest [DigestLength]byte

// Record - a keymap as stored
type Record struct {
	Filename Filename         `json:"filename"`
	Digest   Digest           `json:"digest"`
	Owner    *account.Account `json:"owner"`
}

// Owned - one entry of an owner's list
type Owned struct {
	N        uint64   `json:"n,string"`
	Filename Filename `json:"filename"`
}

// FilenameFromBytes - copy a byte slice into a filename
func FilenameFromBytes(filename *Filename, buffer []byte) error {
	if FilenameLength != len(buffer) {
		return fault.InvalidFilename
	}
	copy(filename[:], buffer)
	return nil
}

// String - hex form for the fmt package
func (filename Filename) String() string {
	return hex.EncodeToString(filename[:])
}

// MarshalText - convert filename to hex text
func (filename Filename) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(FilenameLength))
	hex.Encode(buffer, filename[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a filename
func (filename *Filename) UnmarshalText(s []byte) error {
	if hex.EncodedLen(FilenameLength) != len(s) {
		return fault.InvalidFilename
	}
	if _, err := hex.Decode(filename[:], s); nil != err {
		return fault.InvalidFilename
	}
	return nil
}

// DigestFromBytes - copy a byte slice into a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.InvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// String - hex form for the fmt package
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DigestLength) != len(s) {
		return fault.InvalidDigest
	}
	if _, err := hex.Decode(digest[:], s); nil != err {
		return fault.InvalidDigest
	}
	return nil
}

// pack the stored value: digest ⧺ owner
func pack(digest Digest, owner *account.Account) []byte {
	ownerBytes := owner.Bytes()
	buffer := make([]byte, 0, DigestLength+len(ownerBytes))
	buffer = append(buffer, digest[:]...)
	return append(buffer, ownerBytes...)
}

// unpack a stored value
func unpack(filename Filename, buffer []byte) (*Record, error) {
	if len(buffer) <= DigestLength {
		return nil, fault.InvalidDigest
	}

	owner, err := account.AccountFromBytes(buffer[DigestLength:])
	if nil != err {
		return nil, err
	}

	record := &Record{
		Filename: filename,
		Owner:    owner,
	}
	copy(record.Digest[:], buffer[:DigestLength])
	return record, nil
}
