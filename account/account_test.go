// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/keymapd/account"
	"github.com/bitmark-inc/keymapd/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

func TestValidBytes(t *testing.T) {

loop:
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if nil != err {
			t.Errorf("%d: create account from bytes failed: %s", index, err)
			continue loop
		}

		if !bytes.Equal(buffer, acc.Bytes()) {
			t.Errorf("%d: account bytes: %x does not match: %x", index, acc.Bytes(), buffer)
		}
		if acc.String() != test.base58Account {
			t.Errorf("%d: to base58: got: %s  expected %s", index, acc, test.base58Account)
		}
	}
}

func TestValidBase58(t *testing.T) {
loop:
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue loop
		}
		if acc.IsTesting() != test.testnet {
			t.Errorf("%d: from base58 testnet: %t  expected: %t", index, acc.IsTesting(), test.testnet)
		}
		if acc.KeyType() != account.ED25519 {
			t.Errorf("%d: from base58 type: %d  expected: %d", index, acc.KeyType(), account.ED25519)
		}
		if !bytes.Equal(acc.PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: from base58 pubkey: %x  expected %x", index, acc.PublicKeyBytes(), test.publicKey)
		}

		// round trip through JSON
		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if nil != err {
			t.Errorf("%d: from JSON string error: %s", index, err)
			continue loop
		}

		buffer, _ := json.Marshal(a)
		if j != string(buffer) {
			t.Errorf("%d: marshal JSON:failed: expected %s  actual: %s", index, j, buffer)
		}
	}
}

// build a base58 string with a correct checksum over arbitrary bytes
func withChecksum(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:4]...))
}

func TestInvalidBase58(t *testing.T) {
	publicKey := decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")

	tests := []struct {
		str string
		err error
	}{
		{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.InvalidAccount},  // invalid base58 string
		{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.InvalidChecksum}, // checksum mismatch
		{"", fault.InvalidAccount}, // empty
		{withChecksum(append([]byte{0x10}, publicKey...)), fault.NotPublicKey},          // private key
		{withChecksum(append([]byte{0x71}, publicKey...)), fault.InvalidKeyType},        // undefined algorithm
		{withChecksum(append([]byte{0x01}, publicKey...)), fault.InvalidKeyType},        // nothing algorithm
		{withChecksum(append([]byte{0x11}, publicKey[:31]...)), fault.InvalidKeyLength}, // truncated key
	}

	for index, test := range tests {
		_, err := account.AccountFromBase58(test.str)
		if test.err != err {
			t.Errorf("%d: invalid base58 string: %q expected: %v  actual: %v", index, test.str, test.err, err)
		}
	}
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}

	message := []byte("some message to sign")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Errorf("valid signature rejected: %s", err)
	}

	if err := acc.CheckSignature([]byte("other message"), signature); fault.InvalidSignature != err {
		t.Errorf("wrong message: expected: %v  actual: %v", fault.InvalidSignature, err)
	}

	if err := acc.CheckSignature(message, signature[1:]); fault.InvalidSignature != err {
		t.Errorf("short signature: expected: %v  actual: %v", fault.InvalidSignature, err)
	}
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature(bytes.Repeat([]byte{0x01, 0xab}, ed25519.SignatureSize/2))
	expected := strings.Repeat("01ab", ed25519.SignatureSize/2)

	text, err := signature.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if expected != string(text) {
		t.Errorf("marshal: %q", text)
	}

	var s account.Signature
	if err := s.UnmarshalText([]byte(strings.ToUpper(expected))); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if !bytes.Equal(signature, s) {
		t.Errorf("unmarshal: %x  expected: %x", s, signature)
	}

	if err := s.UnmarshalText(nil); nil != err || nil != s {
		t.Errorf("empty: %x  error: %v", s, err)
	}

	for _, bad := range []string{"01abff", expected + "00", "zz" + expected[2:]} {
		if err := s.UnmarshalText([]byte(bad)); fault.InvalidSignature != err {
			t.Errorf("bad: %q  expected: %v  actual: %v", bad, fault.InvalidSignature, err)
		}
	}
}

// decode the hex string and return []byte
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

func TestAuthenticate(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
	owner := acc.String()
	message := []byte("keymap message")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	a, err := account.Authenticate(owner, message, signature, true)
	if nil != err {
		t.Fatalf("authenticate error: %s", err)
	}
	if !bytes.Equal(acc.Bytes(), a.Bytes()) {
		t.Errorf("authenticated account: %s  expected: %s", a, acc)
	}

	_, err = account.Authenticate(owner, message, signature, false)
	if fault.WrongNetworkForPublicKey != err {
		t.Errorf("wrong network: expected: %v  actual: %v", fault.WrongNetworkForPublicKey, err)
	}

	_, err = account.Authenticate(owner, []byte("tampered"), signature, true)
	if fault.InvalidSignature != err {
		t.Errorf("tampered message: expected: %v  actual: %v", fault.InvalidSignature, err)
	}

	_, err = account.Authenticate("not-an-account", message, signature, true)
	if nil == err {
		t.Errorf("bad account accepted")
	}
}
