// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
)

// Environment variable names for the client-credentials grant.
const (
	EnvTokenURL     = "SALESFORCE_TOKEN_URL"
	EnvClientID     = "CONSUMER_KEY"
	EnvClientSecret = "CONSUMER_SECRET"
)

// TokenResponse is the Salesforce OAuth2 token endpoint response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
	TokenType   string `json:"token_type"`
	IssuedAt    string `json:"issued_at"`
	ExpiresIn   int    `json:"expires_in"`
}

// Credentials holds what the client-credentials grant needs. A connected
// app configured for the flow supplies all three values.
type Credentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// Complete reports whether every grant parameter is present.
func (c Credentials) Complete() bool {
	return c.TokenURL != "" && c.ClientID != "" && c.ClientSecret != ""
}

// CredentialsFromEnv reads grant parameters from the environment, loading a
// .env file from the working directory first when one exists.
func CredentialsFromEnv() Credentials {
	_ = godotenv.Load()
	return Credentials{
		TokenURL:     os.Getenv(EnvTokenURL),
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}
}

// ClientCredentialsGrant exchanges connected-app credentials for an access
// token. The response carries the instance URL to use for API calls.
func ClientCredentialsGrant(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	if creds.TokenURL == "" {
		return nil, fmt.Errorf("token URL is required (set %s or auth.token_url in config)", EnvTokenURL)
	}

	resp, err := resty.New().
		SetTimeout(requestTimeout).
		R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     creds.ClientID,
			"client_secret": creds.ClientSecret,
		}).
		Post(creds.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}

	if resp.StatusCode() != 200 {
		var errBody struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		_ = json.Unmarshal(resp.Body(), &errBody)
		if errBody.Description != "" {
			return nil, fmt.Errorf("authentication failed: %s", errBody.Description)
		}
		return nil, fmt.Errorf("authentication failed: %s", resp.Status())
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token response did not contain an access token")
	}
	return &tokenResp, nil
}

// ExpiresAt converts the optional expires_in field to an absolute RFC 3339
// timestamp. Empty when the endpoint did not report a lifetime.
func (t *TokenResponse) ExpiresAt() string {
	if t.ExpiresIn <= 0 {
		return ""
	}
	return time.Now().Add(time.Duration(t.ExpiresIn) * time.Second).Format(time.RFC3339)
}
