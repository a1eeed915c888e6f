// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// ConfigFile mirrors the ~/.sfkit/config.yaml structure.
type ConfigFile struct {
	API  ConfigAPI  `yaml:"api"`
	Auth ConfigAuth `yaml:"auth"`
}

type ConfigAPI struct {
	// InstanceURL is the Salesforce instance to call. Usually filled in by
	// 'sfkit login' from the token response.
	InstanceURL string `yaml:"instance_url,omitempty"`
	Version     string `yaml:"version,omitempty"`
	// Cache is a directory of previously exported definition files used by
	// the record subcommands instead of live describes.
	Cache string `yaml:"cache,omitempty"`
}

type ConfigAuth struct {
	Token        string `yaml:"token,omitempty"`
	TokenURL     string `yaml:"token_url,omitempty"`
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	ExpiresAt    string `yaml:"expires_at,omitempty"`
}

// Validate checks the auth section for obviously broken values.
func (a ConfigAuth) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.TokenURL, is.URL),
		validation.Field(&a.ClientSecret,
			validation.Required.When(a.ClientID != "").Error("client_secret is required when client_id is set")),
	)
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sfkit", "config.yaml")
}

// ConfigDir returns the ~/.sfkit directory.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sfkit")
}

// LoadConfig reads the default config file.
func LoadConfig() (*ConfigFile, error) {
	return LoadConfigFromPath(ConfigPath())
}

// LoadConfigFromPath reads a config file at a specific path. A missing file
// yields an empty config rather than an error.
func LoadConfigFromPath(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ConfigFile{}, nil
		}
		return nil, err
	}
	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Auth.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config in %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveConfig writes the config back to ConfigPath().
func SaveConfig(cfg *ConfigFile) error {
	return SaveConfigToPath(cfg, ConfigPath())
}

// SaveConfigToPath writes the config to a specific path.
func SaveConfigToPath(cfg *ConfigFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

const sampleConfigContent = `# sfkit configuration
#
# API connection:
#   api.instance_url -- Salesforce instance URL (set by 'sfkit login')
#   api.version      -- REST API version (default: 60.0)
#   api.cache        -- folder of exported definition YAML files
#
# Authentication (connected app, client-credentials flow):
#   auth.token      -- direct bearer token (no login required)
#   auth.token_url  -- OAuth token endpoint of the org
#   auth.client_id  -- connected app consumer key
#   auth.client_secret -- connected app consumer secret
#
api:
  version: "60.0"
  cache: ./definitions

auth:
  # Option 1: Direct bearer token
  # token: 00D...!AQEA...

  # Option 2: Connected app credentials
  token_url: https://login.salesforce.com/services/oauth2/token
  client_id: 3MVG9...
  client_secret: ABCD...
`
