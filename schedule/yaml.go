// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads deletion records from a YAML file with the same shape as
// the JSON source: a top-level sequence of entries with "tags" and "date"
// keys.
type YAMLSource struct {
	Path string
}

// Read parses the YAML file into records.
func (s *YAMLSource) Read() ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, wrapParse(s.Path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, wrapParse(s.Path, err)
	}
	return records, nil
}
