// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidEmailDomain = errors.New("email domain is not accepted")
	ErrEmptyPassword      = errors.New("password is required")
)
