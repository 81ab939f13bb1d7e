// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-form/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

type credentialsValidator struct{}

// NewCredentialsValidator returns a [Validator] for [models.Credentials].
// An email is accepted only when it ends with [models.DomainSuffix] and its
// local-part passes [ValidateLocalPart].
func NewCredentialsValidator() Validator {
	return &credentialsValidator{}
}

func (v *credentialsValidator) Validate(ctx context.Context, data any, fields ...string) error {
	var creds models.Credentials
	switch value := data.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		if value == nil {
			return fmt.Errorf("%w: nil credentials", ErrUnsupportedType)
		}
		creds = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldEmail:
			err = validateEmail(creds.Email)
		case FieldPassword:
			err = validatePassword(creds.Password)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	localPart, found := strings.CutSuffix(email, models.DomainSuffix)
	if !found {
		return ErrInvalidEmailDomain
	}
	if !ValidateLocalPart(localPart) {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	return nil
}
