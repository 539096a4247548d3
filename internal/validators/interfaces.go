// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks node RPC requests before they reach the chain.
//
// Validators are scoped by field: passing field names to Validate restricts
// the check to those fields, otherwise every field known for the type is
// checked.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
