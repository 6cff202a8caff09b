// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"fmt"
	"path"
	"strings"
)

// Match expands glob patterns against a list of live tag names. For each
// pattern, in order, every tag is tested with shell-style glob semantics
// (`*`, `?`, `[...]`) and matches are appended in live-tag order; the
// per-pattern results are concatenated in pattern order. Matches are not
// deduplicated: a tag matched by two patterns appears twice.
//
// Patterns are trimmed of surrounding whitespace before matching, so
// comma-separated lists like "1.*, 2.*" behave as expected.
func Match(patterns []string, liveTags []string) ([]string, error) {
	var matched []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		for _, tag := range liveTags {
			ok, err := path.Match(pattern, tag)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				matched = append(matched, tag)
			}
		}
	}
	return matched, nil
}
