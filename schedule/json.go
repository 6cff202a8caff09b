// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/deletion-list.schema.json
var embeddedSchemaFS embed.FS

// JSONSource reads deletion records from a JSON file whose top-level value
// is an array of {"tags": [...], "date": "..."} objects. The document is
// checked against the embedded deletion-list schema before decoding, so a
// malformed file fails with a message naming the offending field rather
// than a bare decode error.
type JSONSource struct {
	Path string
}

// Read parses the JSON file into records.
func (s *JSONSource) Read() ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, wrapParse(s.Path, err)
	}

	if err := validateAgainstSchema(data, "data/deletion-list.schema.json"); err != nil {
		return nil, wrapParse(s.Path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, wrapParse(s.Path, err)
	}
	return records, nil
}

// validateAgainstSchema validates raw JSON bytes against an embedded schema.
func validateAgainstSchema(data []byte, schemaFile string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
