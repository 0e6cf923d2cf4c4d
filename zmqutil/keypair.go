// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"

	// CURVE key sizes
	PublicKeySize  = 32
	PrivateKeySize = 32
)

// MakeKeyPair - create a new CURVE key pair and write the halves to
// separate files
//
// neither file may already exist
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// Z85 encoded, see: http://rfc.zeromq.org/spec:32
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicText := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateText := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicText), 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateText), 0600); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// ReadPublicKeyFile - read a tagged public key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read a tagged private key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}

// ReadPublicKey - decode a "PUBLIC:<hex>" string
func ReadPublicKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKey - decode a "PRIVATE:<hex>" string
func ReadPrivateKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return data, nil
}

// ParseKey - decode either kind of tagged key
//
// second result is true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	switch {
	case strings.HasPrefix(s, taggedPrivate):
		h, err := hex.DecodeString(s[len(taggedPrivate):])
		if nil != err || PrivateKeySize != len(h) {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return h, true, nil

	case strings.HasPrefix(s, taggedPublic):
		h, err := hex.DecodeString(s[len(taggedPublic):])
		if nil != err || PublicKeySize != len(h) {
			return nil, false, fault.InvalidPublicKeyFile
		}
		return h, false, nil

	default:
		return nil, false, fault.InvalidPublicKeyFile
	}
}
