// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns the current time. The orchestrator captures one value at
// startup so every record in a run is evaluated against the same instant.
type Clock func() time.Time

// strftimeTokens maps strftime-style directives to Go reference-time layout
// elements. The schedule file format keeps the strftime spelling so existing
// deletion tables keep working unchanged.
var strftimeTokens = map[byte]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'd': "02",
	'e': "_2",
	'm': "01",
	'y': "06",
	'Y': "2006",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
}

// LayoutFromStrftime converts a strftime-style pattern such as "%B %d, %Y"
// into a Go reference-time layout. Unsupported directives are an error.
func LayoutFromStrftime(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			b.WriteByte(format[i])
			continue
		}
		i++
		if i == len(format) {
			return "", fmt.Errorf("trailing %% in date format %q", format)
		}
		if format[i] == '%' {
			b.WriteByte('%')
			continue
		}
		layout, ok := strftimeTokens[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in date format %q", format[i], format)
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}

// Evaluator decides whether a record's scheduled date has passed.
type Evaluator struct {
	// Layout is the Go reference-time layout for record dates.
	Layout string

	// Now is the single time snapshot the whole run is evaluated against.
	Now time.Time
}

// Due parses the record's date and reports whether it has passed. A record
// is due iff Now >= date, so a record scheduled for today is deleted today.
// A date that does not match the layout returns ErrDateParse.
func (e *Evaluator) Due(rec Record) (bool, time.Time, error) {
	when, err := time.Parse(e.Layout, rec.Date)
	if err != nil {
		return false, time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrDateParse, rec.Date, e.Layout)
	}
	return !e.Now.Before(when), when, nil
}
