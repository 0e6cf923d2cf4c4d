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

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	filename, err := filenameFromHex(c.String("filename"))
	if nil != err {
		return fmt.Errorf("filename: %s", err)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(filename)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
