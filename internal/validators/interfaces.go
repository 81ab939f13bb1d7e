// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for credentials.
//
// Two layers are exposed:
//   - [ValidateLocalPart], a pure function checking the part of an email
//     address the user types into the auth form;
//   - [Validator], a generic interface the server uses to validate decoded
//     request bodies, optionally restricted to named fields.
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
