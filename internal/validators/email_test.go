// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLocalPart(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "simple dotted name", candidate: "john.doe", want: true},
		{name: "digits and symbols", candidate: "a.b-c_1", want: true},
		{name: "single char", candidate: "x", want: true},
		{name: "uppercase ascii", candidate: "John.DOE", want: true},
		{name: "greek lowercase", candidate: "γιαννης", want: true},
		{name: "greek uppercase folds", candidate: "ΓΙΑΝΝΗΣ", want: true},
		{name: "final sigma", candidate: "νικος", want: true},
		{name: "all atext symbols", candidate: "!#$%&'*+/=?^_`{|}~-", want: true},
		{name: "several segments", candidate: "a.b.c.d", want: true},

		{name: "empty", candidate: "", want: false},
		{name: "contains space", candidate: "bad email", want: false},
		{name: "contains at", candidate: "john@doe", want: false},
		{name: "consecutive dots", candidate: "john..doe", want: false},
		{name: "leading dot", candidate: ".john", want: false},
		{name: "trailing dot", candidate: "john.", want: false},
		{name: "only dot", candidate: ".", want: false},
		{name: "accented greek outside range", candidate: "ά", want: false},
		{name: "cyrillic", candidate: "иван", want: false},
		{name: "trailing newline", candidate: "john\n", want: false},
		{name: "comma", candidate: "a,b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLocalPart(tt.candidate))
		})
	}
}
