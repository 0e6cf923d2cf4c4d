// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keymapd/chain"
	"github.com/bitmark-inc/keymapd/configuration"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/publish"
	"github.com/bitmark-inc/keymapd/rpc/listeners"
	"github.com/bitmark-inc/keymapd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublisherPublicKeyFile  = "publisher.public"
	defaultPublisherPrivateKeyFile = "publisher.private"
	defaultKeyFile                 = "rpc.key"
	defaultCertificateFile         = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabaseSuffix   = ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "keymapd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
	defaultMaxOwned   = 64
	maximumMaxOwned   = 1 << 53
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	MaxOwned      float64      `gluamapper:"max_owned" json:"max_owned"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,
		MaxOwned:      defaultMaxOwned,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // chain dependent
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublisherPublicKeyFile,
			PrivateKey: defaultPublisherPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Chain = chain.Normalise(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported: %s", options.Chain, fault.InvalidChain)
	}

	if err := checkMaxOwned(options.MaxOwned); nil != err {
		return nil, err
	}

	// each chain gets its own database unless one was named
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + defaultDatabaseSuffix
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// plain file names get the directory prefix of the second item
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("file: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	if err := util.MakeDirectories(options.Database.Directory, options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}

// max_owned arrives as a Lua number: it must be a whole number in
// [1, 2^53] to convert exactly
func checkMaxOwned(n float64) error {
	if n < 1 || n > maximumMaxOwned || n != math.Trunc(n) {
		return fault.InvalidMaxOwned
	}
	return nil
}

// maximumOwned - the validated owner capacity
func (options *Configuration) maximumOwned() uint64 {
	return uint64(options.MaxOwned)
}
