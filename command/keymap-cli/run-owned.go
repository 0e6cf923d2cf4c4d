// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/command/keymap-cli/rpccalls"
	"github.com/bitmark-inc/keymapd/fault"
)

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerFromFlags(m, c.String("owner"))
	if nil != err {
		return err
	}

	start := c.Uint64("start")

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	ownedConfig := &rpccalls.OwnedData{
		Owner: owner,
		Start: start,
		Count: count,
	}

	response, err := client.GetOwned(ownedConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// an explicit account takes priority over the identity's account
func ownerFromFlags(m *metadata, owner string) (*account.Account, error) {
	if "" != owner {
		return account.AccountFromBase58(owner)
	}
	if nil == m.config {
		return nil, fmt.Errorf("owner: %s", fault.MissingParameters)
	}
	name, err := identityName(m)
	if nil != err {
		return nil, err
	}
	return m.config.Account(name)
}
