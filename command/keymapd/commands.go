// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keymapd/keymap"
	"github.com/bitmark-inc/keymapd/rpc/certificate"
	"github.com/bitmark-inc/keymapd/storage"
	"github.com/bitmark-inc/keymapd/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"
)

// setup command handler
//
// commands that create key and certificate files, these cannot
// access the database or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-key", "publisher":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "dump", "count":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "fp":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)         - display this message\n\n")
		fmt.Printf("  version                    (v)         - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)      - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publisher-key [DIR]    (publisher) - create private key in: %q\n", "DIR/"+publisherPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+publisherPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)       - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)        - SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  count                                  - number of registered keymaps\n")
		fmt.Printf("\n")

		fmt.Printf("  dump [FILE]                            - dump all keymaps as JSON to stdout/file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.MarshalIndent(options, "", "  ")
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		os.Stdout.Write(b)
		os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		rpc := options.ClientRPC
		keyPair, err := tls.LoadX509KeyPair(rpc.Certificate, rpc.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot read certificate: %q  error: %s", rpc.Certificate, err)
		}
		fmt.Printf("SHA3-256 fingerprint: %x\n", certificate.Fingerprint(keyPair.Certificate[0]))

	default: // unknown commands fall through to data command
		return false
	}

	return true
}

// data command handler
// storage and the registry are open so these commands can read records
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "count":
		fmt.Printf("keymaps: %d  maximum owned: %d\n", keymap.Get().Count(), options.maximumOwned())

	case "dump":
		fd := os.Stdout
		if len(arguments) > 0 && "" != arguments[0] && "-" != arguments[0] {
			var err error
			fd, err = os.Create(arguments[0])
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", arguments[0], err)
			}
		}
		n, err := dumpKeymaps(fd, storage.Pool.Keymaps)
		fd.Close()
		if nil != err {
			exitwithstatus.Message("dump keymaps error: %s", err)
		}
		log.Infof("dumped: %d keymaps", n)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	return true
}

// write records as a JSON array
func dumpKeymaps(w io.Writer, pool storage.Handle) (int, error) {
	n := 0
	fmt.Fprintf(w, "[")
	err := keymap.Walk(pool, func(record *keymap.Record) error {
		s, err := json.MarshalIndent(record, "  ", "  ")
		if nil != err {
			return err
		}
		if n > 0 {
			fmt.Fprintf(w, ",")
		}
		fmt.Fprintf(w, "\n  %s", s)
		n += 1
		return nil
	})
	fmt.Fprintf(w, "\n]\n")
	return n, err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
