// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/command/keymap-cli/configuration"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
)

// KeyPair - output of generate
type KeyPair struct {
	Account    *account.Account `json:"account"`
	PublicKey  string           `json:"public_key"`
	PrivateKey string           `json:"private_key"`
	Seed       string           `json:"seed"`
}

func makeKeyPair(testnet bool) (*KeyPair, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		Account:    configuration.AccountFor(privateKey, testnet),
		PublicKey:  hex.EncodeToString(privateKey.Public().(ed25519.PublicKey)),
		PrivateKey: hex.EncodeToString(privateKey),
		Seed:       hex.EncodeToString(seed),
	}, nil
}

// accepts either a full private key or just its seed
func privateKeyFromHex(s string) (ed25519.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, fault.MissingParameters
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	switch len(b) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(b), nil
	default:
		return nil, fault.InvalidKeyLength
	}
}

// a blank key generates a new one
func keyOrNew(s string) (ed25519.PrivateKey, error) {
	if "" == strings.TrimSpace(s) {
		_, privateKey, err := ed25519.GenerateKey(rand.Reader)
		return privateKey, err
	}
	return privateKeyFromHex(s)
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("identity: %s", fault.MissingParameters)
	}
	return name, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description: %s", fault.MissingParameters)
	}
	return description, nil
}

func requireConfiguration(m *metadata) (*configuration.Configuration, error) {
	if nil == m.config {
		return nil, fmt.Errorf("no configuration: %q, run setup first", m.file)
	}
	return m.config, nil
}

// the named identity or the default one
func identityName(m *metadata) (string, error) {
	config, err := requireConfiguration(m)
	if nil != err {
		return "", err
	}
	if "" != m.identity {
		return m.identity, nil
	}
	if "" == config.DefaultIdentity {
		return "", fault.IdentityNameNotFound
	}
	return config.DefaultIdentity, nil
}

func filenameFromHex(s string) (keymap.Filename, error) {
	var filename keymap.Filename
	if "" == s {
		return filename, fault.MissingParameters
	}
	err := filename.UnmarshalText([]byte(strings.TrimSpace(s)))
	return filename, err
}

func digestFromHex(s string) (keymap.Digest, error) {
	var digest keymap.Digest
	if "" == s {
		return digest, fault.MissingParameters
	}
	err := digest.UnmarshalText([]byte(strings.TrimSpace(s)))
	return digest, err
}
