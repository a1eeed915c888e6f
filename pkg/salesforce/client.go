// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package salesforce is a minimal client for the Salesforce REST API:
// OAuth2 client-credentials login, sobject describe, SOQL queries, and
// record creation. It covers exactly what the sfkit CLI needs and nothing
// of the Metadata or Bulk APIs.
package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultAPIVersion is used when the caller does not pin a REST API version.
const DefaultAPIVersion = "60.0"

const requestTimeout = 30 * time.Second

// Client talks to the Salesforce REST API of a single instance.
type Client struct {
	http       *resty.Client
	apiVersion string
	log        zerolog.Logger
}

// APIError represents a non-2xx response. Salesforce reports errors as a
// JSON array of {message, errorCode} objects; the first entry is kept.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a client bound to an instance URL and bearer token.
// apiVersion may be empty, in which case DefaultAPIVersion applies.
func NewClient(instanceURL, token, apiVersion string) *Client {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(instanceURL, "/")).
		SetAuthToken(token).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:       httpClient,
		apiVersion: apiVersion,
		log:        log.With().Str("component", "salesforce").Logger(),
	}
}

// APIVersion returns the REST API version the client is pinned to.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// BaseURL returns the instance URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// restPath prefixes a resource path with the versioned REST root,
// e.g. restPath("/sobjects/") -> /services/data/v60.0/sobjects/.
func (c *Client) restPath(resource string) string {
	return "/services/data/v" + c.apiVersion + resource
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// do executes one API request. Transient failures (connection errors, 429,
// 5xx) are retried with backoff; 4xx responses surface as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	var resp *resty.Response

	err := retry.Do(
		func() error {
			req := c.http.R().SetContext(ctx)
			if len(query) > 0 {
				req.SetQueryParams(query)
			}
			if body != nil {
				req.SetHeader("Content-Type", "application/json").SetBody(body)
			}

			var err error
			resp, err = req.Execute(method, path)
			if err != nil {
				return err
			}
			if resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500 {
				return fmt.Errorf("HTTP %d from %s", resp.StatusCode(), path)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("requesting %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("API request")

	if resp.StatusCode() >= 400 {
		return apiErrorFrom(resp)
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}

func apiErrorFrom(resp *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}
	var errs []struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	}
	if json.Unmarshal(resp.Body(), &errs) == nil && len(errs) > 0 {
		apiErr.Message = errs[0].Message
		apiErr.ErrorCode = errs[0].ErrorCode
	}
	return apiErr
}
