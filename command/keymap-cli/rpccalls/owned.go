// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/rpc/owner"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner *account.Account
	Start uint64
	Count int
}

// GetOwned - obtain list of owned keymaps
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.KeymapsReply, error) {

	ownedArgs := owner.KeymapsArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &owner.KeymapsReply{}
	err := client.client.Call("Owner.Keymaps", &ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}
