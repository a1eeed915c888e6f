// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

func TestFieldsFromDescribe(t *testing.T) {
	desc := &salesforce.ObjectDescribe{
		Name: "Contact",
		Fields: []salesforce.FieldDescribe{
			{
				Name:   "Id",
				Label:  "Contact ID",
				Type:   "id",
				Length: 18,
			},
			{
				Name:        "AccountId",
				Label:       "Account ID",
				Type:        "reference",
				Length:      18,
				ReferenceTo: []string{"Account"},
			},
			{
				Name:        "OwnerId",
				Label:       "Owner ID",
				Type:        "reference",
				ReferenceTo: []string{"User", "Group"},
			},
			{
				Name:  "LeadSource",
				Label: "Lead Source",
				Type:  "picklist",
				PicklistValues: []salesforce.PicklistEntry{
					{Active: true, Label: "Web", Value: "Web"},
					{Active: false, Label: "Phone Inquiry", Value: "Phone Inquiry"},
				},
			},
		},
	}

	fields := FieldsFromDescribe(desc)
	require.Len(t, fields, 4)

	assert.Equal(t, Field{Name: "Id", Label: "Contact ID", Type: "id", Length: 18, PicklistValues: []string{}}, fields[0])
	assert.Equal(t, "Account", fields[1].Reference)
	assert.Equal(t, "User", fields[2].Reference, "polymorphic lookup keeps first target")
	assert.Equal(t, []string{"Web", "Phone Inquiry"}, fields[3].PicklistValues)
}

func TestFieldsFromDescribePreservesOrder(t *testing.T) {
	desc := &salesforce.ObjectDescribe{
		Fields: []salesforce.FieldDescribe{
			{Name: "Zebra__c"},
			{Name: "Alpha__c"},
			{Name: "Mid__c"},
		},
	}

	fields := FieldsFromDescribe(desc)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Zebra__c", "Alpha__c", "Mid__c"}, names)
}
