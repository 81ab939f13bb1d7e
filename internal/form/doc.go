// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form holds the state of the login/registration form as a plain
// value and the pure transitions between its states.
//
// Every transition takes a [State] and returns the next one; nothing in this
// package performs I/O or keeps references to the presentation layer. The
// controller owns the current value and replaces it with the result of each
// transition on the UI goroutine.
package form
