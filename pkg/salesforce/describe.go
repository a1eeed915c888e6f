// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package salesforce

import (
	"context"
	"fmt"
	"net/url"
)

// SObjectSummary is one entry of the describe-global listing.
type SObjectSummary struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Custom    bool   `json:"custom"`
	Queryable bool   `json:"queryable"`
}

// PicklistEntry is one allowed value of a picklist field.
type PicklistEntry struct {
	Active bool   `json:"active"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

// FieldDescribe is the subset of a field describe result that sfkit keeps.
type FieldDescribe struct {
	Name           string          `json:"name"`
	Label          string          `json:"label"`
	Type           string          `json:"type"`
	Length         int             `json:"length"`
	ReferenceTo    []string        `json:"referenceTo"`
	PicklistValues []PicklistEntry `json:"picklistValues"`
}

// ObjectDescribe is the describe result for one sobject.
type ObjectDescribe struct {
	Name   string          `json:"name"`
	Label  string          `json:"label"`
	Custom bool            `json:"custom"`
	Fields []FieldDescribe `json:"fields"`
}

// DescribeGlobal lists every sobject visible to the authenticated user.
func (c *Client) DescribeGlobal(ctx context.Context) ([]SObjectSummary, error) {
	var result struct {
		Encoding string           `json:"encoding"`
		SObjects []SObjectSummary `json:"sobjects"`
	}
	if err := c.get(ctx, c.restPath("/sobjects/"), nil, &result); err != nil {
		return nil, fmt.Errorf("describe global: %w", err)
	}
	return result.SObjects, nil
}

// Describe retrieves the full metadata description of one sobject.
func (c *Client) Describe(ctx context.Context, object string) (*ObjectDescribe, error) {
	var result ObjectDescribe
	path := c.restPath("/sobjects/" + url.PathEscape(object) + "/describe/")
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, fmt.Errorf("describing %s: %w", object, err)
	}
	return &result, nil
}
