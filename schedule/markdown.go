// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MarkdownSource reads deletion records from a pipe-delimited table embedded
// in a Markdown document between two sentinel lines. Only the region between
// Begin and End is scanned; within it, lines starting with "|" are table
// rows, the first two of which (header and separator) are skipped.
//
// TagColumn and DateColumn are 1-based indices into the "|"-split row, so
// for a conventional table like
//
//	| Tags      | Deletion date    |
//	|-----------|------------------|
//	| `1.*`     | January 05, 2026 |
//
// the defaults of 1 and 2 select the first and second visible columns. The
// tag cell is stripped of whitespace and backticks and split on "," to form
// the pattern list.
type MarkdownSource struct {
	Path       string
	Begin      string
	End        string
	TagColumn  int
	DateColumn int
}

// Read scans the Markdown file and parses the table rows into records.
func (s *MarkdownSource) Read() ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, wrapParse(s.Path, err)
	}
	defer f.Close()

	var records []Record
	parsing := false
	rowNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, s.Begin) {
			parsing = true
		}
		if parsing && strings.HasPrefix(line, "|") && !s.isMarker(line) {
			// ignore blank rows without counting them
			if strings.TrimSpace(line) == "" {
				continue
			}
			rowNum++
			// Skip the header and separator (first two rows)
			if rowNum > 2 {
				rec, err := s.parseRow(line)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		}
		if strings.HasPrefix(line, s.End) {
			parsing = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapParse(s.Path, err)
	}

	return records, nil
}

// isMarker reports whether a line is one of the sentinel lines delimiting
// the table region.
func (s *MarkdownSource) isMarker(line string) bool {
	return strings.HasPrefix(line, s.Begin) || strings.HasPrefix(line, s.End)
}

// parseRow extracts tag patterns and the deletion date from one table row.
func (s *MarkdownSource) parseRow(line string) (Record, error) {
	cells := strings.Split(strings.TrimSpace(line), "|")

	if s.TagColumn > len(cells)-1 {
		return Record{}, fmt.Errorf("%w: tag column %d in row %q", ErrColumnRange, s.TagColumn, line)
	}
	if s.DateColumn > len(cells)-1 {
		return Record{}, fmt.Errorf("%w: date column %d in row %q", ErrColumnRange, s.DateColumn, line)
	}

	tags := strings.ReplaceAll(strings.TrimSpace(cells[s.TagColumn]), "`", "")
	date := strings.TrimSpace(cells[s.DateColumn])

	return Record{Patterns: strings.Split(tags, ","), Date: date}, nil
}
