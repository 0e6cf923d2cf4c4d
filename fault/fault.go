// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CryptoFailed                 = ProcessError("cryptographic operation failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateKeymap              = ExistsError("duplicate keymap")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleDatabaseVersion  = InvalidError("incompatible database version")
	IncompatibleOptions          = InvalidError("incompatible options")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidChecksum              = InvalidError("invalid checksum")
	InvalidConfiguration         = InvalidError("invalid configuration")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDigest                = InvalidError("invalid digest")
	InvalidFilename              = InvalidError("invalid filename")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidMaxOwned              = InvalidError("invalid maximum owned count")
	InvalidPasswordLength        = LengthError("invalid password length")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSalt                  = InvalidError("invalid salt")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	KeymapNotFound               = NotFoundError("keymap not found")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	NotPrivateKey                = InvalidError("not a private key")
	NotPublicKey                 = InvalidError("not a public key")
	Overflow                     = ProcessError("overflow")
	PasswordMismatch             = InvalidError("password mismatch")
	RateLimiting                 = LimitError("rate limiting")
	TooManyOwned                 = LimitError("too many owned")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
