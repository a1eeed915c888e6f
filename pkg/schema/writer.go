// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteObjectYAML writes the field schema for one object to dir/<name>.yaml,
// creating the directory when needed. Field order is preserved as-is.
func WriteObjectYAML(dir, object string, fields []Field) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := yaml.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshaling %s schema: %w", object, err)
	}

	path := filepath.Join(dir, object+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadObjectYAML loads one definition file back into a field list. Files
// whose top-level document is not a sequence of fields are rejected.
func ReadObjectYAML(path string) ([]Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields []Field
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fields, nil
}
