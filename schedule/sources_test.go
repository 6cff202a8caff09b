// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJSONSource(t *testing.T) {
	t.Parallel()

	t.Run("parses records in order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.json", `[
			{"tags": ["1.*", "beta-?"], "date": "January 05, 2024"},
			{"tags": ["v2"], "date": "June 30, 2026"}
		]`)

		records, err := (&JSONSource{Path: path}).Read()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"1.*", "beta-?"}, records[0].Patterns)
		assert.Equal(t, "January 05, 2024", records[0].Date)
		assert.Equal(t, []string{"v2"}, records[1].Patterns)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := (&JSONSource{Path: filepath.Join(t.TempDir(), "absent.json")}).Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.json", `{not json`)
		_, err := (&JSONSource{Path: path}).Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("wrong shape rejected by schema", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.json", `[{"tags": "not-an-array", "date": "January 05, 2024"}]`)
		_, err := (&JSONSource{Path: path}).Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("missing date rejected by schema", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.json", `[{"tags": ["v1"]}]`)
		_, err := (&JSONSource{Path: path}).Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})
}

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	t.Run("parses records", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.yaml", `
- tags: ["1.*"]
  date: January 05, 2024
- tags:
    - v2
  date: June 30, 2026
`)

		records, err := (&YAMLSource{Path: path}).Read()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"1.*"}, records[0].Patterns)
		assert.Equal(t, "January 05, 2024", records[0].Date)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "deletions.yaml", "::\tnot yaml")
		_, err := (&YAMLSource{Path: path}).Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})
}

const markdownDoc = `# Deprecated tags

Some prose before the table.

<!-- BEGIN deletion_table -->
| Tags         | Deletion date    |
|--------------|------------------|
| ` + "`1.*`" + `        | January 05, 2024 |
| ` + "`v2, v3`" + `     | June 30, 2026    |
<!-- END deletion_table -->

| ignored | outside the region |
`

func TestMarkdownSource(t *testing.T) {
	t.Parallel()

	newSource := func(path string) *MarkdownSource {
		return &MarkdownSource{
			Path:       path,
			Begin:      "<!-- BEGIN deletion_table -->",
			End:        "<!-- END deletion_table -->",
			TagColumn:  1,
			DateColumn: 2,
		}
	}

	t.Run("parses table rows between sentinels", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "README.md", markdownDoc)
		records, err := newSource(path).Read()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"1.*"}, records[0].Patterns)
		assert.Equal(t, "January 05, 2024", records[0].Date)
		assert.Equal(t, []string{"v2", " v3"}, records[1].Patterns)
		assert.Equal(t, "June 30, 2026", records[1].Date)
	})

	t.Run("column out of range", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "README.md", markdownDoc)
		src := newSource(path)
		src.DateColumn = 9
		_, err := src.Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrColumnRange)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		src := newSource(filepath.Join(t.TempDir(), "absent.md"))
		_, err := src.Read()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("no region yields no records", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "README.md", "# Nothing here\n\n| a | b |\n")
		records, err := newSource(path).Read()
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	t.Run("concatenates in source order", func(t *testing.T) {
		t.Parallel()

		jsonPath := writeFile(t, "deletions.json", `[{"tags": ["a"], "date": "January 05, 2024"}]`)
		mdPath := writeFile(t, "README.md", markdownDoc)

		records, err := ReadAll(
			&JSONSource{Path: jsonPath},
			&MarkdownSource{
				Path:       mdPath,
				Begin:      "<!-- BEGIN deletion_table -->",
				End:        "<!-- END deletion_table -->",
				TagColumn:  1,
				DateColumn: 2,
			},
		)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"a"}, records[0].Patterns)
		assert.Equal(t, []string{"1.*"}, records[1].Patterns)
	})

	t.Run("no sources", func(t *testing.T) {
		t.Parallel()

		records, err := ReadAll()
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("first source error stops", func(t *testing.T) {
		t.Parallel()

		_, err := ReadAll(&JSONSource{Path: filepath.Join(t.TempDir(), "absent.json")})
		require.Error(t, err)
	})
}
