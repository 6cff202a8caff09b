// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package schedule parses deletion-schedule documents and decides which
scheduled deletions are due.

A schedule is a list of records, each pairing a set of tag glob patterns
with a human-formatted deletion date:

	[{"tags": ["1.*", "beta-?"], "date": "January 05, 2026"}]

Records come from three interchangeable sources — a JSON file, a YAML file,
and a pipe-delimited table embedded in a Markdown document between sentinel
comments. ReadAll concatenates them in source order.

The Evaluator parses record dates with a configurable layout and compares
them against a single time snapshot captured at the start of the run; a
record is due once the snapshot reaches its date, inclusive. Match expands
the patterns of due records against the live tag list with filename-glob
semantics, preserving order and duplicates.
*/
package schedule
