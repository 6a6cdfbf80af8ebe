// Package version normalizes and classifies tfbump build versions.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/birchgrove/tfbump/internal/messages"
)

// IsDev reports whether raw identifies an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize converts a version string into canonical X.Y.Z form.
// A leading "v" is accepted and stripped.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf(messages.VersionRequired)
	}
	trimmed = strings.TrimPrefix(trimmed, "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
		}
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
		}
	}
	return trimmed, nil
}
