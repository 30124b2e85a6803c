// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the closed error taxonomy of the synchronization
// client and the human-readable messages shown to the user for each kind.
//
// Every failure surface (validation, key vault, transport, response decoding)
// is reported as a [*SyncError]. Raw transport error text never reaches the
// user: [SyncError.Error] renders one of the Msg* constants below, optionally
// followed by a short detail.
package app

const (
	MsgServerURLMissing      = "synchronization server URL is not configured"
	MsgEmailMissing          = "synchronization email is not configured"
	MsgDeviceKeyMissing      = "device is not activated: no device key stored"
	MsgAuthenticationFailed  = "authentication with the synchronization server failed"
	MsgConnectionFailed      = "could not connect to the synchronization server"
	MsgHostNotFound          = "synchronization server host not found"
	MsgTimeout               = "request to the synchronization server timed out"
	MsgServerError           = "synchronization server error"
	MsgBadRequest            = "synchronization server rejected the request"
	MsgContentMissing        = "nothing to share: content is empty"
	MsgContentTooLarge       = "content is too large to share (limit is 1 MiB)"
	MsgFileNameMissing       = "file name is missing"
	MsgDeviceIDsMissing      = "no target devices selected"
	MsgMissingPublicKey      = "device has no public key"
	MsgCompressionFailed     = "failed to compress content"
	MsgEncryptionFailed      = "failed to encrypt content"
	MsgInvalidResponse       = "invalid response from the synchronization server"
	MsgMissingExpirationDate = "server response has no expiration date"
	MsgMissingEncryptionKey  = "device public key is missing"
	MsgKeyStoreUnavailable   = "secret store is unavailable"
	MsgDecryptionFailed      = "failed to decrypt shared content"
	MsgOther                 = "synchronization error"
)
