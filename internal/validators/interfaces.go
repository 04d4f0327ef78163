// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// Each Validator accepts the model types it knows and an optional list of
// field names that restricts the checks to those fields. Unknown types
// yield ErrUnsupportedType and unknown field names ErrUnknownField.
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
