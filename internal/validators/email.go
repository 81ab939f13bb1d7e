// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "regexp"

// localPartChar is the accepted character class of a local-part segment:
// Greek and ASCII letters, digits and the RFC 5322 atext symbols.
const localPartChar = "[α-ωa-z0-9!#$%&'*+/=?^_`{|}~-]"

var localPartRegexp = regexp.MustCompile(`(?i)^` + localPartChar + `+(?:\.` + localPartChar + `+)*$`)

// ValidateLocalPart reports whether candidate is an acceptable local-part:
// one or more segments joined by single dots, compared case-insensitively.
// The whole string must match; the empty string never does.
func ValidateLocalPart(candidate string) bool {
	return localPartRegexp.MatchString(candidate)
}
