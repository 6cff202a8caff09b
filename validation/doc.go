// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package validation provides validation functions for values interpolated
// into registry HTTP requests: header values, base URLs, and tag names.
package validation
