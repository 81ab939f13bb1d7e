// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-auth-form/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: go-auth-form\nVersion: %s\nDate: %s\nCommit: %s",
		valueOr(info.BuildVersion(), "N/A"),
		valueOr(info.BuildDate(), "N/A"),
		valueOr(info.BuildCommit(), "N/A"),
	)

	return renderPage("ABOUT", body, "esc: back")
}
