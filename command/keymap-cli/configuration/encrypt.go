// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/keymapd/fault"
)

const (
	nonceSize = 24
	keySize   = 32

	// bounds on the plaintext: a hex seed is 64 characters
	minimumDataLength = 32
	maximumDataLength = 16384
)

// derive the secretbox key from a password
func passwordKey(password string, salt *Salt) (*[keySize]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16, // KiB
		Parallelism: 4,
		HashLen:     keySize,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}

	key := new([keySize]byte)
	copy(key[:], hash)
	return key, nil
}

// seal data under key; the result is hex(nonce ++ box)
func encryptData(data string, key *[keySize]byte) (string, error) {

	if l := len(data); l < minimumDataLength || l >= maximumDataLength {
		return "", fault.CryptoFailed
	}

	// a random 192 bit nonce per message
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.CryptoFailed
	}

	sealed := secretbox.Seal(nonce[:], []byte(data), &nonce, key)
	return hex.EncodeToString(sealed), nil
}

// reverse of encryptData
func decryptData(ciphertext string, key *[keySize]byte) (string, error) {

	sealed, err := hex.DecodeString(ciphertext)
	if nil != err || len(sealed) <= nonceSize {
		return "", fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	data, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, key)
	if !ok {
		return "", fault.CryptoFailed
	}
	return string(data), nil
}
