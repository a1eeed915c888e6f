// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &ConfigFile{
		API: ConfigAPI{
			InstanceURL: "https://example.my.salesforce.com",
			Version:     "59.0",
			Cache:       "./definitions",
		},
		Auth: ConfigAuth{
			Token:        "00Dxx!token",
			TokenURL:     "https://login.salesforce.com/services/oauth2/token",
			ClientID:     "consumer-key",
			ClientSecret: "consumer-secret",
		},
	}
	require.NoError(t, SaveConfigToPath(cfg, path))

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &ConfigFile{}, cfg)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth: [not a mapping"), 0600))

	_, err := LoadConfigFromPath(path)
	require.Error(t, err)
}

func TestConfigAuthValidate(t *testing.T) {
	tests := []struct {
		name    string
		auth    ConfigAuth
		wantErr bool
	}{
		{
			name: "empty auth is fine",
			auth: ConfigAuth{},
		},
		{
			name: "complete credentials",
			auth: ConfigAuth{
				TokenURL:     "https://login.salesforce.com/services/oauth2/token",
				ClientID:     "key",
				ClientSecret: "secret",
			},
		},
		{
			name:    "broken token URL",
			auth:    ConfigAuth{TokenURL: "%%%"},
			wantErr: true,
		},
		{
			name:    "client_id without client_secret",
			auth:    ConfigAuth{ClientID: "key"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.auth.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
