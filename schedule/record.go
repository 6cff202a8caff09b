// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import "fmt"

// Record is one deletion-schedule entry: a set of tag glob patterns and the
// date on or after which the matching tags should be deleted. The date is
// kept unparsed; the Evaluator interprets it with the configured layout.
type Record struct {
	Patterns []string `json:"tags" yaml:"tags"`
	Date     string   `json:"date" yaml:"date"`
}

// Source produces deletion records from one schedule document.
type Source interface {
	// Read parses the source document into its records, in document order.
	Read() ([]Record, error)
}

// ReadAll concatenates the records of all sources, in source order. The
// combined list is not deduplicated; the same pattern appearing in several
// sources simply occurs several times.
func ReadAll(sources ...Source) ([]Record, error) {
	var records []Record
	for _, src := range sources {
		recs, err := src.Read()
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// wrapParse attaches ErrParse to an error from reading or decoding a source
// document, naming the file it came from.
func wrapParse(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrParse, path, err)
}
