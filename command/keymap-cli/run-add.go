// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/fault"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config, err := requireConfiguration(m)
	if nil != err {
		return err
	}

	name, err := checkName(m.identity)
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed := c.String("seed")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	switch {
	case "" != seed && "" != acc:
		return fault.IncompatibleOptions

	case "" != acc:
		if err := config.AddReceiveOnlyIdentity(name, description, acc); nil != err {
			return err
		}

	default:
		privateKey, err := keyOrNew(seed)
		if nil != err {
			return err
		}

		// check before asking for a password
		if _, ok := config.Identities[name]; ok {
			return fault.IdentityNameAlreadyExists
		}

		password, err := newPassword(m)
		if nil != err {
			return err
		}
		if err := config.AddIdentity(name, description, privateKey, password); nil != err {
			return err
		}
	}

	if c.Bool("default") || "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	// require configuration update
	m.save = true

	return printJson(m.w, config.Info())
}
