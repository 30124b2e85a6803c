// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates every failure the synchronization client can report.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindServerURLMissing
	KindEmailMissing
	KindDeviceKeyMissing
	KindAuthenticationFailed
	KindConnectionFailed
	KindHostNotFound
	KindTimeout
	KindServerError
	KindBadRequest
	KindContentMissing
	KindContentTooLarge
	KindFileNameMissing
	KindDeviceIDsMissing
	KindMissingPublicKey
	KindCompressionFailed
	KindEncryptionFailed
	KindInvalidResponse
	KindMissingExpirationDate
	KindMissingEncryptionKey
	KindKeyStoreUnavailable
	KindDecryptionFailed
)

var kindMessages = map[ErrorKind]string{
	KindOther:                 MsgOther,
	KindServerURLMissing:      MsgServerURLMissing,
	KindEmailMissing:          MsgEmailMissing,
	KindDeviceKeyMissing:      MsgDeviceKeyMissing,
	KindAuthenticationFailed:  MsgAuthenticationFailed,
	KindConnectionFailed:      MsgConnectionFailed,
	KindHostNotFound:          MsgHostNotFound,
	KindTimeout:               MsgTimeout,
	KindServerError:           MsgServerError,
	KindBadRequest:            MsgBadRequest,
	KindContentMissing:        MsgContentMissing,
	KindContentTooLarge:       MsgContentTooLarge,
	KindFileNameMissing:       MsgFileNameMissing,
	KindDeviceIDsMissing:      MsgDeviceIDsMissing,
	KindMissingPublicKey:      MsgMissingPublicKey,
	KindCompressionFailed:     MsgCompressionFailed,
	KindEncryptionFailed:      MsgEncryptionFailed,
	KindInvalidResponse:       MsgInvalidResponse,
	KindMissingExpirationDate: MsgMissingExpirationDate,
	KindMissingEncryptionKey:  MsgMissingEncryptionKey,
	KindKeyStoreUnavailable:   MsgKeyStoreUnavailable,
	KindDecryptionFailed:      MsgDecryptionFailed,
}

// String returns the user-facing message of the kind.
func (k ErrorKind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return MsgOther
}

// SyncError is the single error type of the synchronization client.
//
// Kind selects the variant. Detail, Status and DeviceName carry the variant
// payload (Timeout/InvalidResponse/Other detail, ServerError status,
// MissingPublicKey device name). Err optionally holds the underlying cause for
// logging and errors.Is/As traversal; it is never part of the rendered
// message.
type SyncError struct {
	Kind       ErrorKind
	Detail     string
	Status     int
	DeviceName string
	Err        error
}

// Error renders the user-visible message.
func (e *SyncError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Kind == KindServerError && e.Status != 0:
		return fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	case e.Kind == KindMissingPublicKey && e.DeviceName != "":
		return fmt.Sprintf("device %q has no public key", e.DeviceName)
	case e.Detail != "":
		return msg + ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is matches any *SyncError of the same kind, so errors.Is(err,
// ErrServerError) holds for every ServerError status.
func (e *SyncError) Is(target error) bool {
	var t *SyncError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for matching with errors.Is.
var (
	ErrOther                 = &SyncError{Kind: KindOther}
	ErrServerURLMissing      = &SyncError{Kind: KindServerURLMissing}
	ErrEmailMissing          = &SyncError{Kind: KindEmailMissing}
	ErrDeviceKeyMissing      = &SyncError{Kind: KindDeviceKeyMissing}
	ErrAuthenticationFailed  = &SyncError{Kind: KindAuthenticationFailed}
	ErrConnectionFailed      = &SyncError{Kind: KindConnectionFailed}
	ErrHostNotFound          = &SyncError{Kind: KindHostNotFound}
	ErrTimeout               = &SyncError{Kind: KindTimeout}
	ErrServerError           = &SyncError{Kind: KindServerError}
	ErrBadRequest            = &SyncError{Kind: KindBadRequest}
	ErrContentMissing        = &SyncError{Kind: KindContentMissing}
	ErrContentTooLarge       = &SyncError{Kind: KindContentTooLarge}
	ErrFileNameMissing       = &SyncError{Kind: KindFileNameMissing}
	ErrDeviceIDsMissing      = &SyncError{Kind: KindDeviceIDsMissing}
	ErrMissingPublicKey      = &SyncError{Kind: KindMissingPublicKey}
	ErrCompressionFailed     = &SyncError{Kind: KindCompressionFailed}
	ErrEncryptionFailed      = &SyncError{Kind: KindEncryptionFailed}
	ErrInvalidResponse       = &SyncError{Kind: KindInvalidResponse}
	ErrMissingExpirationDate = &SyncError{Kind: KindMissingExpirationDate}
	ErrMissingEncryptionKey  = &SyncError{Kind: KindMissingEncryptionKey}
	ErrKeyStoreUnavailable   = &SyncError{Kind: KindKeyStoreUnavailable}
	ErrDecryptionFailed      = &SyncError{Kind: KindDecryptionFailed}
)

// Wrap returns a SyncError of the given kind caused by err.
func Wrap(kind ErrorKind, err error) error {
	return &SyncError{Kind: kind, Err: err}
}

// Timeout reports a timed out request.
func Timeout(detail string) error {
	return &SyncError{Kind: KindTimeout, Detail: detail}
}

// ServerError reports an unexpected HTTP status.
func ServerError(status int) error {
	return &SyncError{Kind: KindServerError, Status: status}
}

// MissingPublicKey reports a recipient device without a public key.
func MissingPublicKey(deviceName string) error {
	return &SyncError{Kind: KindMissingPublicKey, DeviceName: deviceName}
}

// InvalidResponse reports an undecodable or incomplete server response.
func InvalidResponse(detail string) error {
	return &SyncError{Kind: KindInvalidResponse, Detail: detail}
}

// Other reports a failure outside the named kinds.
func Other(detail string) error {
	return &SyncError{Kind: KindOther, Detail: detail}
}

// KindOf returns the kind of the first SyncError in err's chain, or
// KindOther when err carries none.
func KindOf(err error) ErrorKind {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindOther
}

// Classify converts an arbitrary error into a SyncError, keeping err as the
// cause. A SyncError already present in the chain is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var se *SyncError
	if errors.As(err, &se) {
		return se
	}
	return &SyncError{Kind: KindOther, Err: err}
}
