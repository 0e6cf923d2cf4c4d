// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keymapd/chain"
	"github.com/bitmark-inc/keymapd/command/keymap-cli/configuration"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	save     bool
	identity string
	password string
	connect  string
	testnet  bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "keymap-cli"
	app.Usage = "register and query keymaps on a keymapd"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Live,
			Usage: " accounts for `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " keymapd RPC `HOST:PORT`",
			EnvVar: "KEYMAP_CONNECT",
		},
		cli.StringFlag{
			Name:   "config, C",
			Value:  "",
			Usage:  " identity file `FILE` [$XDG_CONFIG_HOME/keymap-cli/NETWORK-keymap-cli.json]",
			EnvVar: "KEYMAP_CONFIG",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " identity `NAME` [default identity]",
			EnvVar: "KEYMAP_IDENTITY",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " identity `PASSWORD` [prompt]",
			EnvVar: "KEYMAP_PASSWORD",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new key pair and its account",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "create the identity file with its first identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " existing hex seed or private key `KEY` [new key]",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add an identity to the identity file",
			ArgsUsage: "\n   (* = required, + = at most one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+existing hex seed or private key `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+base58 `ACCOUNT` for a query only identity",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "identities",
			Usage:  "list the identities in the identity file",
			Action: runIdentities,
		},
		{
			Name:      "register",
			Usage:     "register a keymap owned by the identity's account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "filename, f",
					Value: "",
					Usage: "*16 byte hex `FILENAME`",
				},
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*16 byte hex `DIGEST`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "get",
			Usage:     "display a keymap",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "filename, f",
					Value: "",
					Usage: "*16 byte hex `FILENAME`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "owned",
			Usage:     "list keymaps of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " base58 `ACCOUNT` [identity's account]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start from record `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display keymapd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display keymap-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		network := chain.Normalise(c.GlobalString("network"))
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q is not supported", network)
		}

		file := c.GlobalString("config")
		if "" == file {
			dir, err := configurationDirectory()
			if nil != err {
				return err
			}
			file = filepath.Join(dir, app.Name, network+"-"+app.Name+".json")
		}

		m := &metadata{
			file:     file,
			identity: c.GlobalString("identity"),
			password: c.GlobalString("password"),
			connect:  c.GlobalString("connect"),
			testnet:  chain.IsTesting(network),
			verbose:  c.GlobalBool("verbose"),
			e:        app.ErrWriter,
			w:        app.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}

		if m.verbose {
			fmt.Fprintf(m.e, "network: %s\n", network)
			fmt.Fprintf(m.e, "file: %s\n", m.file)
		}

		// setup creates the file, everything else reads it if present
		switch c.Args().Get(0) {
		case "setup":
			if _, err := os.Stat(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
		case "version", "help", "h":
		default:
			if _, err := os.Stat(file); nil == err {
				config, err := configuration.Load(file)
				if nil != err {
					return err
				}
				if config.TestNet != m.testnet {
					return fmt.Errorf("configuration: %q is not for network: %s", file, network)
				}
				m.config = config
				if !c.GlobalIsSet("connect") && "" != config.Connect {
					m.connect = config.Connect
				}
			}
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		}
		return nil
	}

	// write back any identity changes
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return m.config.Save(m.file)
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// XDG_CONFIG_HOME, else ~/.config
func configurationDirectory() (string, error) {
	if p := os.Getenv("XDG_CONFIG_HOME"); "" != p {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if nil != err {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
