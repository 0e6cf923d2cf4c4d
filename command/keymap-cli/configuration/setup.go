// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
)

// MinimumPasswordLength - shortest password accepted for a new identity
const MinimumPasswordLength = 8

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - account in clear, private key sealed under the password
//
// an identity with empty Data and Salt can only be used as an owner
// for queries
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data,omitempty"`
	Salt        string `json:"salt,omitempty"`
}

// InfoIdentity - the public part of an identity
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"can_sign"`
}

// New - an empty configuration
func New(testnet bool, connect string) *Configuration {
	return &Configuration{
		TestNet:    testnet,
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read a configuration file
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	config := &Configuration{}
	if err := json.NewDecoder(f).Decode(config); nil != err {
		return nil, err
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	return config, nil
}

// Save - write via a temporary file, keeping the previous file as .bk
func (config *Configuration) Save(filename string) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	buffer, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return err
	}
	_, err = f.Write(append(buffer, '\n'))
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(tempFile)
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return &id, nil
}

// Account - the account of a named identity
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return config.checkedAccount(id.Account)
}

// PrivateKey - unseal the private key of a named identity
func (config *Configuration) PrivateKey(name string, password string) (ed25519.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	if "" == id.Data {
		return nil, fault.NotPrivateKey
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(id.Salt)); nil != err {
		return nil, err
	}

	key, err := passwordKey(password, salt)
	if nil != err {
		return nil, err
	}

	seedHex, err := decryptData(id.Data, key)
	if nil != err {
		return nil, fault.WrongPassword
	}
	seed, err := hex.DecodeString(seedHex)
	if nil != err || ed25519.SeedSize != len(seed) {
		return nil, fault.NotPrivateKey
	}
	privateKey := ed25519.NewKeyFromSeed(seed)

	// the sealed key must still belong to the stored account
	if AccountFor(privateKey, config.TestNet).String() != id.Account {
		return nil, fault.NotPrivateKey
	}
	return privateKey, nil
}

// AddIdentity - seal a private key under password and store it
func (config *Configuration) AddIdentity(name string, description string, privateKey ed25519.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}
	if len(password) < MinimumPasswordLength {
		return fault.InvalidPasswordLength
	}
	if ed25519.PrivateKeySize != len(privateKey) {
		return fault.InvalidKeyLength
	}

	salt, err := MakeSalt()
	if nil != err {
		return err
	}
	key, err := passwordKey(password, salt)
	if nil != err {
		return err
	}
	data, err := encryptData(hex.EncodeToString(privateKey.Seed()), key)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     AccountFor(privateKey, config.TestNet).String(),
		Data:        data,
		Salt:        salt.String(),
	}
	return nil
}

// AddReceiveOnlyIdentity - store an account without any private key
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}
	if _, err := config.checkedAccount(acc); nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}
	return nil
}

// Info - public view of all identities in name order
func (config *Configuration) Info() []InfoIdentity {
	info := make([]InfoIdentity, 0, len(config.Identities))
	for name, id := range config.Identities {
		info = append(info, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     "" != id.Data,
		})
	}
	sort.Slice(info, func(i, j int) bool {
		return info[i].Name < info[j].Name
	})
	return info
}

// AccountFor - the account of a private key on the selected network
func AccountFor(privateKey ed25519.PrivateKey, testnet bool) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      testnet,
			PublicKey: privateKey.Public().(ed25519.PublicKey),
		},
	}
}

func (config *Configuration) checkedAccount(s string) (*account.Account, error) {
	acc, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if acc.IsTesting() != config.TestNet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return acc, nil
}
