// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymap_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/storage"
)

func TestMain(m *testing.M) {
	logDirectory, err := ioutil.TempDir("", "keymap-log")
	if nil != err {
		panic(err)
	}

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

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// event recorded by the test sender
type event struct {
	command    string
	parameters [][]byte
}

type recorder struct {
	sync.Mutex
	events []event
}

func (r *recorder) Send(command string, parameters ...[]byte) {
	r.Lock()
	r.events = append(r.events, event{command: command, parameters: parameters})
	r.Unlock()
}

func (r *recorder) count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.events)
}

// open an in-memory database and a registry over it
func setup(t *testing.T, maxOwned uint64) (keymap.Keymap, *recorder) {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	r := &recorder{}
	k, err := keymap.New(logger.New("keymap"), handles(), maxOwned, storage.NewDBTransaction, r)
	if nil != err {
		storage.Finalise()
		t.Fatalf("keymap create error: %s", err)
	}
	return k, r
}

func teardown() {
	storage.Finalise()
}

func handles() keymap.Handles {
	return keymap.Handles{
		KeymapCount: storage.Pool.KeymapCount,
		Keymaps:     storage.Pool.Keymaps,
		OwnerCount:  storage.Pool.OwnerCount,
		OwnerList:   storage.Pool.OwnerList,
	}
}

// deterministic test account from a seed byte
func makeAccount(seed byte) (*account.Account, ed25519.PrivateKey) {
	privateKey := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
	publicKey := privateKey.Public().(ed25519.PublicKey)
	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
	return acc, privateKey
}

func makeFilename(n byte) keymap.Filename {
	var f keymap.Filename
	for i := range f {
		f[i] = n
	}
	f[0] = 0xf0
	return f
}

func makeDigest(n byte) keymap.Digest {
	var d keymap.Digest
	for i := range d {
		d[i] = n ^ byte(i)
	}
	return d
}
