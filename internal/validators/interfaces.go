// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the inputs of the synchronization services
// before any network or storage call is made.
//
// A [Validator] dispatches on the type of the value and can be limited to a
// subset of named fields, e.g. only the server url of the settings during a
// device listing.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
