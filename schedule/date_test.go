// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFromStrftime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		format    string
		want      string
		expectErr bool
	}{
		{name: "default format", format: "%B %d, %Y", want: "January 02, 2006"},
		{name: "numeric date", format: "%Y-%m-%d", want: "2006-01-02"},
		{name: "abbreviated month", format: "%b %d %y", want: "Jan 02 06"},
		{name: "literal percent", format: "100%%", want: "100%"},
		{name: "unsupported directive", format: "%Q", expectErr: true},
		{name: "trailing percent", format: "%Y-%", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LayoutFromStrftime(tt.format)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatorDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	eval := &Evaluator{Layout: "January 02, 2006", Now: now}

	tests := []struct {
		name string
		date string
		due  bool
	}{
		{"past date is due", "January 05, 2024", true},
		{"future date is not due", "December 01, 2026", false},
		{"boundary date is due", "March 15, 2026", true},
		{"day before now is due", "March 14, 2026", true},
		{"day after now is not due", "March 16, 2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			due, when, err := eval.Due(Record{Patterns: []string{"*"}, Date: tt.date})
			require.NoError(t, err)
			assert.Equal(t, tt.due, due)
			assert.False(t, when.IsZero())
		})
	}
}

func TestEvaluatorDueMalformedDate(t *testing.T) {
	t.Parallel()

	eval := &Evaluator{Layout: "January 02, 2006", Now: time.Now()}

	for _, date := range []string{"13/45/2024", "not a date", ""} {
		_, _, err := eval.Due(Record{Date: date})
		require.Error(t, err, "date %q", date)
		require.ErrorIs(t, err, ErrDateParse)
	}
}
