// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks journal request models before they reach the
// store: emoji length, update completeness, credential presence and month
// bounds.
//
// A Validator receives any supported model (value or pointer) and an optional
// list of field names. With no names the model's default field set is
// checked; with names only those fields are, which lets login skip the
// registration-only password limit.
package validators

import "context"

// Validator validates a request model, optionally restricted to fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
