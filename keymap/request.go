// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymap

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
)

// prefix of every signed registration message
const signaturePrefix = "keymap"

// Request - a signed registration request
type Request struct {
	Owner     string            `json:"owner"` // base58
	Filename  Filename          `json:"filename"`
	Digest    Digest            `json:"digest"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes covered by the signature
//
//	"keymap" ⧺ filename ⧺ digest
func (request *Request) Message() []byte {
	message := make([]byte, 0, len(signaturePrefix)+FilenameLength+DigestLength)
	message = append(message, signaturePrefix...)
	message = append(message, request.Filename[:]...)
	return append(message, request.Digest[:]...)
}

// Sign - fill in the signature
func (request *Request) Sign(privateKey ed25519.PrivateKey) error {
	if ed25519.PrivateKeySize != len(privateKey) {
		return fault.InvalidKeyLength
	}
	request.Signature = ed25519.Sign(privateKey, request.Message())
	return nil
}

// Authenticate - resolve the owner if the signature is good
func (request *Request) Authenticate(testing bool) (*account.Account, error) {
	if "" == request.Owner || 0 == len(request.Signature) {
		return nil, fault.MissingParameters
	}
	return account.Authenticate(request.Owner, request.Message(), request.Signature, testing)
}
