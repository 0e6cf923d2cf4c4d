// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - make a configured path absolute
//
// relative paths are taken from directory; empty paths stay empty
func EnsureAbsolute(directory string, filePath string) string {
	if "" == filePath {
		return ""
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if something exists at the path
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// MakeDirectories - create each directory, and any missing parents,
// readable only by the owner
//
// fails if something other than a directory is already there
func MakeDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
