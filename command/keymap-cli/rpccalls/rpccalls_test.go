// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keymapd/chain"
	"github.com/bitmark-inc/keymapd/command/keymap-cli/rpccalls"
	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/fixtures"
	"github.com/bitmark-inc/keymapd/rpc/server"
	"github.com/bitmark-inc/keymapd/storage"
)

func newClient(t *testing.T, maxOwned uint64, verbose *bytes.Buffer) *rpccalls.Client {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	pools := keymap.Handles{
		KeymapCount: storage.Pool.KeymapCount,
		Keymaps:     storage.Pool.Keymaps,
		OwnerCount:  storage.Pool.OwnerCount,
		OwnerList:   storage.Pool.OwnerList,
	}
	registry, err := keymap.New(logger.New(fixtures.LogCategory), pools, maxOwned, storage.NewDBTransaction, nil)
	if nil != err {
		t.Fatalf("keymap create error: %s", err)
	}

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.2", &count, registry, chain.Testing, nil)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return rpccalls.NewClientConn(clientConn, nil != verbose, verbose)
}

func TestRegisterAndQuery(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	var verbose bytes.Buffer
	client := newClient(t, 1, &verbose)
	defer storage.Finalise()
	defer client.Close()

	owner, privateKey := fixtures.Account(3)
	data := &rpccalls.RegisterData{
		Owner:      owner,
		PrivateKey: privateKey,
		Filename:   keymap.Filename{0xf1, 0x01},
		Digest:     keymap.Digest{0xd1},
	}

	reply, err := client.Register(data)
	assert.Nil(t, err, "register error")
	assert.Equal(t, data.Filename, reply.Filename, "wrong filename")
	assert.Contains(t, verbose.String(), "Register Request", "verbose output")

	_, err = client.Register(data)
	assert.NotNil(t, err, "duplicate accepted")
	if nil != err {
		assert.Equal(t, fault.DuplicateKeymap.Error(), err.Error(), "wrong error")
	}

	data.Filename = keymap.Filename{0xf1, 0x02}
	_, err = client.Register(data)
	assert.NotNil(t, err, "capacity exceeded")
	if nil != err {
		assert.Equal(t, fault.TooManyOwned.Error(), err.Error(), "wrong error")
	}

	got, err := client.Get(keymap.Filename{0xf1, 0x01})
	assert.Nil(t, err, "get error")
	assert.Equal(t, keymap.Digest{0xd1}, got.Record.Digest, "wrong digest")
	assert.Equal(t, owner.String(), got.Record.Owner.String(), "wrong owner")

	owned, err := client.GetOwned(&rpccalls.OwnedData{
		Owner: owner,
		Start: 0,
		Count: 10,
	})
	assert.Nil(t, err, "owned error")
	assert.Equal(t, uint64(1), owned.MaxOwned, "wrong max owned")
	assert.Equal(t, 1, len(owned.Data), "wrong owned count")

	info, err := client.GetInfo()
	assert.Nil(t, err, "info error")
	assert.Equal(t, "1.2", info.Version, "wrong version")
	assert.Equal(t, uint64(1), info.Keymaps, "wrong keymap count")
}

func TestRegisterBadKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client := newClient(t, 4, nil)
	defer storage.Finalise()
	defer client.Close()

	owner, _ := fixtures.Account(3)
	_, otherKey := fixtures.Account(4)

	_, err := client.Register(&rpccalls.RegisterData{
		Owner:      owner,
		PrivateKey: otherKey,
		Filename:   keymap.Filename{0xf2},
	})
	assert.NotNil(t, err, "wrong signer accepted")
	if nil != err {
		assert.Equal(t, fault.InvalidSignature.Error(), err.Error(), "wrong error")
	}

	_, err = client.Register(&rpccalls.RegisterData{
		Owner:      owner,
		PrivateKey: otherKey[:10],
	})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key signed")
}
