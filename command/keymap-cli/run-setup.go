// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/command/keymap-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(m.identity)
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKey, err := keyOrNew(c.String("seed"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	password, err := newPassword(m)
	if nil != err {
		return err
	}

	configDir := filepath.Dir(m.file)
	if err := os.MkdirAll(configDir, 0700); nil != err {
		return err
	}

	config := configuration.New(m.testnet, m.connect)
	config.DefaultIdentity = name

	err = config.AddIdentity(name, description, privateKey, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return printJson(m.w, config.Info())
}
