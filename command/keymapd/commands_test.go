// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/storage"
)

func TestMain(m *testing.M) {
	logDirectory, err := ioutil.TempDir("", "keymapd-log")
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

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"))
	assert.Equal(t, "/etc/keymapd/rpc.crt", getFilenameWithDirectory([]string{"/etc/keymapd", "127.0.0.1"}, "rpc.crt"))
}

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "keymapd-certificate")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, rpcCertificateKeyFilename)
	keyFile := filepath.Join(dir, rpcPrivateKeyFilename)

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, nil)
	assert.Nil(t, err, "certificate error")

	info, err := os.Stat(keyFile)
	assert.Nil(t, err, "missing key")
	if nil == err {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "key permissions")
	}

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrote certificate")

	os.Remove(certificateFile)
	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, false, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrote key")
}

func TestDumpKeymaps(t *testing.T) {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage error: %s", err)
	}
	defer storage.Finalise()

	registry, err := keymap.New(logger.New("test"), keymap.Handles{
		KeymapCount: storage.Pool.KeymapCount,
		Keymaps:     storage.Pool.Keymaps,
		OwnerCount:  storage.Pool.OwnerCount,
		OwnerList:   storage.Pool.OwnerList,
	}, 2, storage.NewDBTransaction, nil)
	if nil != err {
		t.Fatalf("keymap error: %s", err)
	}

	var buffer bytes.Buffer
	n, err := dumpKeymaps(&buffer, storage.Pool.Keymaps)
	assert.Nil(t, err, "empty dump error")
	assert.Equal(t, 0, n, "empty dump count")
	assert.Equal(t, "[\n]\n", buffer.String(), "empty dump")

	privateKey := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{7}, ed25519.SeedSize))
	owner := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: privateKey.Public().(ed25519.PublicKey),
		},
	}

	for i := byte(1); i <= 2; i += 1 {
		var filename keymap.Filename
		var digest keymap.Digest
		filename[0] = i
		digest[0] = 0x10 + i
		_, err := registry.Register(owner, filename, digest)
		assert.Nil(t, err, "register error")
	}

	buffer.Reset()
	n, err = dumpKeymaps(&buffer, storage.Pool.Keymaps)
	assert.Nil(t, err, "dump error")
	assert.Equal(t, 2, n, "dump count")

	records := []keymap.Record{}
	err = json.Unmarshal(buffer.Bytes(), &records)
	assert.Nil(t, err, "dump is not JSON")
	assert.Equal(t, 2, len(records), "records")
	if 2 == len(records) {
		assert.Equal(t, byte(1), records[0].Filename[0], "first filename")
		assert.Equal(t, byte(0x12), records[1].Digest[0], "second digest")
		assert.Equal(t, owner.String(), records[1].Owner.String(), "owner")
	}
}
