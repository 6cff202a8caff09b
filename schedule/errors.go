// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import "errors"

// Sentinel errors for schedule sources and evaluation.
var (
	// ErrParse is returned when a source document is missing, unreadable,
	// or does not decode into deletion records.
	ErrParse = errors.New("schedule parse failed")

	// ErrColumnRange is returned when a configured Markdown column index
	// exceeds the number of cells in a table row.
	ErrColumnRange = errors.New("column is out of range")

	// ErrDateParse is returned when a record's date string does not match
	// the configured date format. A malformed date cannot be resolved to a
	// safe default, so callers treat this as fatal for the run.
	ErrDateParse = errors.New("date parse failed")
)
