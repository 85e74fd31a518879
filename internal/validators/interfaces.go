// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for authentication payloads:
// email shape and password strength, exposed both as plain predicates and
// through the generic Validator interface used by the service layer.
//
// Usage patterns:
//  1. Inject a Validator implementation into services or handlers.
//  2. Call Validate with context, value, and optional field names to
//     restrict validation to a subset of fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
