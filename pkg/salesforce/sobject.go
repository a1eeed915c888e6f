// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package salesforce

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SaveError is one entry of the errors array in a save result.
type SaveError struct {
	StatusCode string   `json:"statusCode"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields"`
}

// SaveResult is the response to a record create.
type SaveResult struct {
	ID      string      `json:"id"`
	Success bool        `json:"success"`
	Errors  []SaveError `json:"errors"`
}

// CreateRecord creates a record of the given sobject type.
func (c *Client) CreateRecord(ctx context.Context, object string, fields map[string]any) (*SaveResult, error) {
	var result SaveResult
	path := c.restPath("/sobjects/" + url.PathEscape(object) + "/")
	if err := c.post(ctx, path, fields, &result); err != nil {
		return nil, fmt.Errorf("creating %s: %w", object, err)
	}
	if !result.Success {
		if len(result.Errors) > 0 {
			return nil, fmt.Errorf("creating %s: %s", object, result.Errors[0].Message)
		}
		return nil, fmt.Errorf("creating %s: save was not successful", object)
	}
	return &result, nil
}

// GetRecord fetches a single record by Id, selecting the given fields.
func (c *Client) GetRecord(ctx context.Context, object, id string, fields []string) (Record, error) {
	soql := fmt.Sprintf("SELECT %s FROM %s WHERE Id = '%s'",
		strings.Join(fields, ", "), object, escapeSOQLString(id))
	records, err := c.QueryAll(ctx, soql)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s %s not found", object, id)
	}
	return records[0], nil
}

// UploadFile attaches a local file to a record by creating a ContentVersion
// published against the parent Id.
func (c *Client) UploadFile(ctx context.Context, parentID, path string) (*SaveResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fileName := filepath.Base(path)
	title := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	result, err := c.CreateRecord(ctx, "ContentVersion", map[string]any{
		"Title":                  title,
		"PathOnClient":           fileName,
		"VersionData":            base64.StdEncoding.EncodeToString(data),
		"FirstPublishLocationId": parentID,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", fileName, err)
	}
	return result, nil
}

// escapeSOQLString escapes quotes and backslashes in a SOQL string literal.
func escapeSOQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
