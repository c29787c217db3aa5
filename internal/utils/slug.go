// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9_\s-]+`)
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts arbitrary text into a URL-safe slug.
//
// The text is lower-cased and trimmed. Everything outside letters, digits,
// underscore, whitespace and hyphen is dropped. Runs of whitespace,
// underscores and hyphens collapse into a single hyphen, and leading or
// trailing hyphens are removed. The result is either empty or matches
// ^[a-z0-9]+(-[a-z0-9]+)*$, and Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
