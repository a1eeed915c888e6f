// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package schema reduces Salesforce describe results to a compact per-field
// schema, serializes it as one YAML file per object, and serves it back to
// query helpers through an in-memory registry.
package schema

import (
	"github.com/samber/lo"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

// Field is the compact schema kept for one sobject field. The YAML layout
// matches the definition files on disk, one sequence entry per field.
type Field struct {
	Name           string   `yaml:"name" json:"name"`
	Label          string   `yaml:"label" json:"label"`
	Type           string   `yaml:"type" json:"type"`
	Reference      string   `yaml:"reference" json:"reference"`
	Length         int      `yaml:"length" json:"length"`
	PicklistValues []string `yaml:"picklistValues" json:"picklistValues"`
}

// FieldsFromDescribe reduces a describe result to the compact schema,
// preserving the field order Salesforce returned. Polymorphic lookups keep
// only their first reference target.
func FieldsFromDescribe(desc *salesforce.ObjectDescribe) []Field {
	return lo.Map(desc.Fields, func(f salesforce.FieldDescribe, _ int) Field {
		field := Field{
			Name:   f.Name,
			Label:  f.Label,
			Type:   f.Type,
			Length: f.Length,
			PicklistValues: lo.Map(f.PicklistValues, func(pv salesforce.PicklistEntry, _ int) string {
				return pv.Value
			}),
		}
		if len(f.ReferenceTo) > 0 {
			field.Reference = f.ReferenceTo[0]
		}
		return field
	})
}
