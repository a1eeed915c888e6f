// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"context"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

// LoginCommand returns the 'login' CLI command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate with Salesforce and save the token",
		Action: func(c *cli.Context) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			creds := resolveCredentials(c, cfg)
			if creds.ClientSecret == "" && creds.ClientID != "" {
				fmt.Print("Consumer secret: ")
				secret, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("reading consumer secret: %w", err)
				}
				creds.ClientSecret = string(secret)
			}

			tokenResp, err := salesforce.ClientCredentialsGrant(c.Context, creds)
			if err != nil {
				return err
			}

			cfg.Auth.Token = tokenResp.AccessToken
			cfg.Auth.TokenURL = creds.TokenURL
			cfg.Auth.ClientID = creds.ClientID
			cfg.Auth.ClientSecret = creds.ClientSecret
			cfg.Auth.ExpiresAt = tokenResp.ExpiresAt()
			if tokenResp.InstanceURL != "" {
				cfg.API.InstanceURL = tokenResp.InstanceURL
			}

			if err := SaveConfig(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Login successful. Token saved to %s\n", ConfigPath())
			return nil
		},
	}
}

// resolveCredentials merges grant parameters from flags, config, and
// environment, in that order of preference.
func resolveCredentials(c *cli.Context, cfg *ConfigFile) salesforce.Credentials {
	env := salesforce.CredentialsFromEnv()

	creds := salesforce.Credentials{
		TokenURL:     firstNonEmpty(c.String("token-url"), cfg.Auth.TokenURL, env.TokenURL),
		ClientID:     firstNonEmpty(c.String("client-id"), cfg.Auth.ClientID, env.ClientID),
		ClientSecret: firstNonEmpty(c.String("client-secret"), cfg.Auth.ClientSecret, env.ClientSecret),
	}
	return creds
}

// ResolveToken picks the bearer token for an API call: explicit flag first,
// then the stored token (refreshed by re-grant when near expiry), then a
// fresh grant from whatever credentials are available.
func ResolveToken(ctx context.Context, c *cli.Context, cfg *ConfigFile) (token, instanceURL string, err error) {
	if t := c.String("token"); t != "" {
		return t, cfg.API.InstanceURL, nil
	}

	creds := resolveCredentials(c, cfg)

	if cfg.Auth.Token != "" && !tokenNearExpiry(cfg.Auth.ExpiresAt) {
		return cfg.Auth.Token, cfg.API.InstanceURL, nil
	}

	if !creds.Complete() {
		if cfg.Auth.Token != "" {
			// Expired but nothing to re-grant with; let the API decide.
			return cfg.Auth.Token, cfg.API.InstanceURL, nil
		}
		return "", "", fmt.Errorf("not authenticated: run 'sfkit login' or set %s, %s and %s",
			salesforce.EnvTokenURL, salesforce.EnvClientID, salesforce.EnvClientSecret)
	}

	tokenResp, err := salesforce.ClientCredentialsGrant(ctx, creds)
	if err != nil {
		return "", "", err
	}

	cfg.Auth.Token = tokenResp.AccessToken
	cfg.Auth.ExpiresAt = tokenResp.ExpiresAt()
	if tokenResp.InstanceURL != "" {
		cfg.API.InstanceURL = tokenResp.InstanceURL
	}
	// Best effort: a failed save only means the next run grants again.
	_ = SaveConfig(cfg)

	return tokenResp.AccessToken, cfg.API.InstanceURL, nil
}

// tokenNearExpiry reports whether the stored expiry is within 30s of now.
// Unknown or unparsable expiry counts as still valid.
func tokenNearExpiry(expiresAt string) bool {
	if expiresAt == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return false
	}
	return !time.Now().Before(t.Add(-30 * time.Second))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
