// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the event bus, the bus workers and the transport
// into a single process lifecycle: the connection is opened in the
// background before the view is shown and closed after the view exits.
package client
