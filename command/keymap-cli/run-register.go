// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/command/keymap-cli/rpccalls"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(m)
	if nil != err {
		return err
	}

	filename, err := filenameFromHex(c.String("filename"))
	if nil != err {
		return fmt.Errorf("filename: %s", err)
	}

	digest, err := digestFromHex(c.String("digest"))
	if nil != err {
		return fmt.Errorf("digest: %s", err)
	}

	owner, err := m.config.Account(name)
	if nil != err {
		return err
	}

	password, err := checkPassword(m)
	if nil != err {
		return err
	}
	privateKey, err := m.config.PrivateKey(name, password)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "filename: %s\n", filename)
		fmt.Fprintf(m.e, "digest: %s\n", digest)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	registerConfig := &rpccalls.RegisterData{
		Owner:      owner,
		PrivateKey: privateKey,
		Filename:   filename,
		Digest:     digest,
	}

	response, err := client.Register(registerConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
