// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keymapd/storage"
)

// common test setup routines

func TestMain(m *testing.M) {
	logDirectory, err := ioutil.TempDir("", "storage-log")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// configure for testing
func setup(t *testing.T) {
	err := storage.InitialiseInMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

// store the expected elements in insertion order that differs from key order
func writeElements(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	for _, i := range []int{6, 2, 5, 0, 3, 1, 4} {
		e := expectedElements[i]
		trx.Put(storage.Pool.TestData, e.Key, e.Value)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
