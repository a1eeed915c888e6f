// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package salesforce

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
)

// Record is one row of a query result. Keys are field API names.
type Record map[string]any

// ID returns the record's Salesforce Id, or "" when absent.
func (r Record) ID() string {
	return cast.ToString(r["Id"])
}

// QueryResult is one page of a SOQL query response.
type QueryResult struct {
	TotalSize      int      `json:"totalSize"`
	Done           bool     `json:"done"`
	NextRecordsURL string   `json:"nextRecordsUrl"`
	Records        []Record `json:"records"`
}

// Query runs a SOQL query and returns the first page of results.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResult, error) {
	var result QueryResult
	if err := c.get(ctx, c.restPath("/query/"), map[string]string{"q": soql}, &result); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	stripAttributes(result.Records)
	return &result, nil
}

// QueryAll runs a SOQL query and follows nextRecordsUrl until the result
// set is complete.
func (c *Client) QueryAll(ctx context.Context, soql string) ([]Record, error) {
	page, err := c.Query(ctx, soql)
	if err != nil {
		return nil, err
	}

	records := page.Records
	for !page.Done && page.NextRecordsURL != "" {
		var next QueryResult
		// nextRecordsUrl is an absolute path including the version prefix.
		if err := c.get(ctx, page.NextRecordsURL, nil, &next); err != nil {
			return nil, fmt.Errorf("query page %s: %w", page.NextRecordsURL, err)
		}
		stripAttributes(next.Records)
		records = append(records, next.Records...)
		page = &next
	}
	return records, nil
}

// stripAttributes drops the per-record "attributes" envelope the REST API
// adds to every query row.
func stripAttributes(records []Record) {
	for _, r := range records {
		delete(r, "attributes")
	}
}
