// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the config left the HTTP address empty.
var errNoServersAreCreated = errors.New("no servers are created")
