// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package validation provides safety checks for values that end up in HTTP
// requests to the registry: header values, base URLs, and tag names used in
// request paths.
package validation

import (
	"fmt"
	"net/url"
	"regexp"

	"golang.org/x/net/http/httpguts"
)

// tagPattern is the Docker tag grammar: a word character followed by up to
// 127 word, dot, or dash characters.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]{0,127}$`)

// ValidateHeaderValue validates that a string is a valid HTTP header value
// per RFC 7230. It checks for CRLF injection and control characters, so a
// token or credential can never smuggle extra headers into a request.
func ValidateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}

	// Length limit to prevent DoS (common HTTP server limit)
	if len(value) > 8192 {
		return fmt.Errorf("header value exceeds maximum length of 8192 bytes")
	}

	// Use httpguts validation (same as Go's HTTP/2 implementation)
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// ValidateBaseURL validates an API base URL.
//
// A valid base URL must:
//   - Include a scheme (http/https)
//   - Include a host
//   - Not contain fragments
func ValidateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https: %s", baseURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("base URL must include a host: %s", baseURL)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("base URL must not contain fragments (#): %s", baseURL)
	}

	return nil
}

// ValidateTag validates that a string is a well-formed image tag name, safe
// to interpolate into a request path.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}

	if !tagPattern.MatchString(tag) {
		return fmt.Errorf("invalid tag name: %q", tag)
	}

	return nil
}
