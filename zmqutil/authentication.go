// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// ZAP handler state, shared by every CURVE socket in the process
var authentication struct {
	sync.Mutex
	started bool
	domains map[string]struct{}
}

// StartAuthentication - start the ZAP handler used by CURVE sockets
//
// repeated calls are harmless
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.started {
		return nil
	}

	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		return err
	}
	authentication.started = true
	authentication.domains = make(map[string]struct{})
	return nil
}

// StopAuthentication - stop the ZAP handler
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.started {
		return
	}
	zmq.AuthStop()
	authentication.started = false
	authentication.domains = nil
}

// let any CURVE client into a domain, once per domain
func allowAnyClient(zapDomain string) {
	authentication.Lock()
	defer authentication.Unlock()

	if nil != authentication.domains {
		if _, ok := authentication.domains[zapDomain]; ok {
			return
		}
		authentication.domains[zapDomain] = struct{}{}
	}
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
}
