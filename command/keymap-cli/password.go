// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/keymapd/command/keymap-cli/configuration"
	"github.com/bitmark-inc/keymapd/fault"
)

// prompt on the controlling terminal, input is not echoed
func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", fmt.Errorf("no terminal for password: %s", err)
	}
	defer tty.Close()

	fmt.Fprint(tty, prompt)
	password, err := terminal.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(tty)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// password for an existing identity
func checkPassword(m *metadata) (string, error) {
	if "" != m.password {
		return m.password, nil
	}
	return readPassword("password: ")
}

// password for a new identity, entered twice when prompted
func newPassword(m *metadata) (string, error) {
	password := m.password
	if "" == password {
		var err error
		password, err = readPassword(fmt.Sprintf("new identity password (length >= %d): ", configuration.MinimumPasswordLength))
		if nil != err {
			return "", err
		}
		if len(password) >= configuration.MinimumPasswordLength {
			verify, err := readPassword("verify password: ")
			if nil != err {
				return "", err
			}
			if verify != password {
				return "", fault.PasswordMismatch
			}
		}
	}
	if len(password) < configuration.MinimumPasswordLength {
		return "", fault.InvalidPasswordLength
	}
	return password, nil
}
