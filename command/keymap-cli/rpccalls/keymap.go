// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/keymaps"
)

// RegisterData - data for a registration request
type RegisterData struct {
	Owner      *account.Account
	PrivateKey ed25519.PrivateKey
	Filename   keymap.Filename
	Digest     keymap.Digest
}

// Register - sign and submit a new keymap
func (client *Client) Register(registerConfig *RegisterData) (*keymaps.RegisterReply, error) {

	request := keymap.Request{
		Owner:    registerConfig.Owner.String(),
		Filename: registerConfig.Filename,
		Digest:   registerConfig.Digest,
	}
	err := request.Sign(registerConfig.PrivateKey)
	if nil != err {
		return nil, err
	}

	client.printJson("Register Request", request)

	reply := &keymaps.RegisterReply{}
	err = client.client.Call("Keymap.Register", &request, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Register Reply", reply)

	return reply, nil
}

// Get - fetch one keymap
func (client *Client) Get(filename keymap.Filename) (*keymaps.GetReply, error) {

	getArgs := keymaps.GetArguments{
		Filename: filename,
	}

	client.printJson("Get Request", getArgs)

	reply := &keymaps.GetReply{}
	err := client.client.Call("Keymap.Get", &getArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return reply, nil
}
