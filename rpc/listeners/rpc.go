// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/keymapd/counter"
	"github.com/bitmark-inc/keymapd/fault"
	"github.com/bitmark-inc/keymapd/util"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Close() error
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type address struct {
	network  string
	hostPort string
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []address
	listeners      []net.Listener
}

// NewRPC - validate the configuration and prepare a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddresses(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}
	return r, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s", a.hostPort)
		listener, err := tls.Listen(a.network, a.hostPort, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, listener)

		go doServeRPC(listener, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Close - stop accepting; open connections finish their current calls
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()
	return r.closeAll()
}

// must hold the lock
func (r *rpcListener) closeAll() error {
	var err error
	for _, listener := range r.listeners {
		if e := listener.Close(); nil != e && nil == err {
			err = e
		}
	}
	r.listeners = nil
	return err
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !count.IncrementBelow(maximumConnections) {
			log.Warnf("rpc connection refused from: %s  limit: %d", conn.RemoteAddr(), maximumConnections)
			_ = conn.Close()
			continue
		}
		go func() {
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			count.Decrement()
		}()
	}
	_ = listen.Close()
}

// "*:PORT" listens on tcp4 and tcp6
func parseListenAddresses(listen []string, log *logger.L) ([]address, error) {
	addresses := make([]address, len(listen))
	for i, l := range listen {
		hostPort, v6, err := util.CanonicalIPandPort(l)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", l, err)
			return nil, err
		}

		network := "tcp4"
		if strings.HasPrefix(strings.TrimSpace(l), "*") {
			network = "tcp"
		} else if v6 {
			network = "tcp6"
		}
		addresses[i] = address{
			network:  network,
			hostPort: hostPort,
		}
	}
	return addresses, nil
}
