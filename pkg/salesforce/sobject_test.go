// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package salesforce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecord(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"001NEW","success":true,"errors":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", "60.0")
	result, err := c.CreateRecord(context.Background(), "Account", map[string]any{"Name": "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "/services/data/v60.0/sobjects/Account/", gotPath)
	assert.Equal(t, "Acme", gotBody["Name"])
	assert.Equal(t, "001NEW", result.ID)
	assert.True(t, result.Success)
}

func TestCreateRecordSaveFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"errors":[{"statusCode":"REQUIRED_FIELD_MISSING","message":"Required fields are missing: [Name]","fields":["Name"]}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", "")
	_, err := c.CreateRecord(context.Background(), "Account", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required fields are missing")
}

func TestUploadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf-bytes"), 0644))

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/data/v60.0/sobjects/ContentVersion/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"068NEW","success":true,"errors":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", "60.0")
	result, err := c.UploadFile(context.Background(), "001A", path)
	require.NoError(t, err)

	assert.Equal(t, "068NEW", result.ID)
	assert.Equal(t, "report", gotBody["Title"])
	assert.Equal(t, "report.pdf", gotBody["PathOnClient"])
	assert.Equal(t, "001A", gotBody["FirstPublishLocationId"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pdf-bytes")), gotBody["VersionData"])
}

func TestUploadFileMissing(t *testing.T) {
	c := NewClient("https://example.my.salesforce.com", "token", "")
	_, err := c.UploadFile(context.Background(), "001A", "/no/such/file.pdf")
	require.Error(t, err)
}
