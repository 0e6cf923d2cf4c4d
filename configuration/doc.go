// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file must return a table; most of base Lua is available, so
// values can be computed or taken from the environment with
// os.getenv
package configuration
