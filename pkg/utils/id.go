package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a standardized, human-readable mission run ID.
// Format: {slugifiedMissionName}-{8charHexUUID}
//
// Example:
//   - Input: name="Supply Run"
//   - Output: "supply-run-a3f8e2b1"
//
// The UUID suffix keeps IDs globally unique while the slug keeps log
// lines and reports scannable.
func GenerateRunID(name string) string {
	return slugify(name) + "-" + generateShortUUID()
}

// slugify lowercases the name and collapses anything that is not a letter
// or digit into single hyphens.
//   - "Supply Run"   -> "supply-run"
//   - "patrol #3"    -> "patrol-3"
//   - ""             -> "mission"
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "mission"
	}
	return slug
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
