// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keymaps_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/fixtures"
	"github.com/bitmark-inc/keymapd/rpc/keymaps"
	"github.com/bitmark-inc/keymapd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

var (
	filename = keymap.Filename{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f}
	digest   = keymap.Digest{0xd0, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde, 0xdf}
)

func signedRequest(t *testing.T, seed byte) (*keymap.Request, *account.Account) {
	acc, privateKey := fixtures.Account(seed)
	request := &keymap.Request{
		Owner:    acc.String(),
		Filename: filename,
		Digest:   digest,
	}
	if err := request.Sign(privateKey); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return request, acc
}

func TestKeymapRegister(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKeymap(ctl)
	k := keymaps.New(logger.New(fixtures.LogCategory), r, true)

	request, acc := signedRequest(t, 1)

	r.EXPECT().Register(gomock.Any(), filename, digest).DoAndReturn(
		func(owner *account.Account, f keymap.Filename, d keymap.Digest) (keymap.Filename, error) {
			assert.Equal(t, acc.Bytes(), owner.Bytes(), "wrong authenticated owner")
			return f, nil
		},
	).Times(1)

	var reply keymaps.RegisterReply
	err := k.Register(request, &reply)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, filename, reply.Filename, "wrong filename")
}

func TestKeymapRegisterRefused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKeymap(ctl)
	k := keymaps.New(logger.New(fixtures.LogCategory), r, true)

	request, _ := signedRequest(t, 1)

	for _, e := range []error{fault.DuplicateKeymap, fault.TooManyOwned, fault.Overflow} {
		r.EXPECT().Register(gomock.Any(), filename, digest).Return(filename, e).Times(1)

		var reply keymaps.RegisterReply
		err := k.Register(request, &reply)
		assert.Equal(t, e, err, "wrong error")
	}
}

func TestKeymapRegisterUnauthenticated(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no registry calls expected
	r := mocks.NewMockKeymap(ctl)

	request, _ := signedRequest(t, 1)

	tampered := *request
	tampered.Digest[0] ^= 0xff

	var reply keymaps.RegisterReply

	k := keymaps.New(logger.New(fixtures.LogCategory), r, true)
	err := k.Register(&tampered, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong tampered request")

	unsigned := *request
	unsigned.Signature = nil
	err = k.Register(&unsigned, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong unsigned request")

	live := keymaps.New(logger.New(fixtures.LogCategory), r, false)
	err = live.Register(request, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network")

	err = k.Register(nil, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong nil arguments")
}

func TestKeymapGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockKeymap(ctl)
	k := keymaps.New(logger.New(fixtures.LogCategory), r, true)

	acc, _ := fixtures.Account(2)
	record := &keymap.Record{
		Filename: filename,
		Digest:   digest,
		Owner:    acc,
	}

	r.EXPECT().Get(filename).Return(record, nil).Times(1)

	var reply keymaps.GetReply
	err := k.Get(&keymaps.GetArguments{Filename: filename}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply.Record, "wrong record")

	other := keymap.Filename{}
	r.EXPECT().Get(other).Return(nil, fault.KeymapNotFound).Times(1)

	err = k.Get(&keymaps.GetArguments{Filename: other}, &reply)
	assert.Equal(t, fault.KeymapNotFound, err, "wrong missing Get")
}

func TestKeymapNoRegistry(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k := keymaps.New(logger.New(fixtures.LogCategory), nil, true)
	request, _ := signedRequest(t, 1)

	err := k.Register(request, &keymaps.RegisterReply{})
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong Register")

	err = k.Get(&keymaps.GetArguments{Filename: filename}, &keymaps.GetReply{})
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong Get")
}
