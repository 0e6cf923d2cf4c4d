// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"bytes"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
)

// LogCategory - logger tag for tests
const LogCategory = "testing"

var logDirectory string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "rpc-log")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(logDirectory)
}

// Certificate - a fresh self-signed certificate and key in PEM form
func Certificate() (string, string) {
	validUntil := time.Now().Add(time.Hour)
	certificate, key, err := certgen.NewTLSCertPair("keymapd test", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(certificate), string(key)
}

// Account - deterministic test network account from a seed byte
func Account(seed byte) (*account.Account, ed25519.PrivateKey) {
	privateKey := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: privateKey.Public().(ed25519.PublicKey),
		},
	}
	return acc, privateKey
}
