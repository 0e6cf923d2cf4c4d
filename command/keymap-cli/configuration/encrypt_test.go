// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/keymapd/fault"
)

func TestPasswordKey(t *testing.T) {
	salt := &Salt{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	k1, err := passwordKey("correct horse", salt)
	assert.Nil(t, err, "derive error")

	k2, err := passwordKey("correct horse", salt)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, k1, k2, "same password and salt")

	k3, err := passwordKey("battery staple", salt)
	assert.Nil(t, err, "derive error")
	assert.NotEqual(t, k1, k3, "different password")

	other := *salt
	other[0] = 0xff
	k4, err := passwordKey("correct horse", &other)
	assert.Nil(t, err, "derive error")
	assert.NotEqual(t, k1, k4, "different salt")
}

func TestEncryptDecrypt(t *testing.T) {
	key := &[keySize]byte{0x55}
	data := strings.Repeat("ab", 32)

	sealed, err := encryptData(data, key)
	assert.Nil(t, err, "encrypt error")
	assert.NotContains(t, sealed, data, "plaintext visible")

	again, err := encryptData(data, key)
	assert.Nil(t, err, "encrypt error")
	assert.NotEqual(t, sealed, again, "nonce must differ")

	opened, err := decryptData(sealed, key)
	assert.Nil(t, err, "decrypt error")
	assert.Equal(t, data, opened, "round trip")

	wrong := &[keySize]byte{0x56}
	_, err = decryptData(sealed, wrong)
	assert.Equal(t, fault.CryptoFailed, err, "wrong key")

	tampered := []byte(sealed)
	if '0' == tampered[len(tampered)-1] {
		tampered[len(tampered)-1] = '1'
	} else {
		tampered[len(tampered)-1] = '0'
	}
	_, err = decryptData(string(tampered), key)
	assert.Equal(t, fault.CryptoFailed, err, "tampered")
}

func TestEncryptDecryptBadInput(t *testing.T) {
	key := &[keySize]byte{}

	_, err := encryptData("short", key)
	assert.Equal(t, fault.CryptoFailed, err, "too short")

	_, err = encryptData(strings.Repeat("x", maximumDataLength), key)
	assert.Equal(t, fault.CryptoFailed, err, "too long")

	for _, s := range []string{"", "not hex", strings.Repeat("00", nonceSize)} {
		_, err = decryptData(s, key)
		assert.Equal(t, fault.CryptoFailed, err, "ciphertext: %q", s)
	}
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "make error")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, salt.String(), string(text), "text form")

	decoded := new(Salt)
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal error")
	assert.Equal(t, salt, decoded, "round trip")

	for _, s := range []string{"", "0102", strings.Repeat("zz", saltSize), strings.Repeat("00", saltSize+1)} {
		assert.Equal(t, fault.InvalidSalt, decoded.UnmarshalText([]byte(s)), "salt: %q", s)
	}
}
