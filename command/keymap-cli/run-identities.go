// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/command/keymap-cli/configuration"
)

type identitiesReply struct {
	DefaultIdentity string                       `json:"default_identity"`
	TestNet         bool                         `json:"testnet"`
	Connect         string                       `json:"connect"`
	Identities      []configuration.InfoIdentity `json:"identities"`
}

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config, err := requireConfiguration(m)
	if nil != err {
		return err
	}

	return printJson(m.w, identitiesReply{
		DefaultIdentity: config.DefaultIdentity,
		TestNet:         config.TestNet,
		Connect:         config.Connect,
		Identities:      config.Info(),
	})
}
