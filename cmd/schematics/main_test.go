package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IBM/schematics-go-sdk/core"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestWorkspacesGet(t *testing.T) {
	var gotPath, gotAuth, gotUA string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"ws-1","name":"demo"}`))
	})
	t.Setenv(envBearerToken, "test-token")

	out, err := runCLI(t, "--url", srv.URL, "workspaces", "get", "ws-1")
	if err != nil {
		t.Fatalf("workspaces get error = %v", err)
	}
	if gotPath != "/v1/workspaces/ws-1" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUA != "schematics-cli" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if !strings.Contains(out, `"name": "demo"`) {
		t.Errorf("output = %q", out)
	}
}

func TestJobsList_Filters(t *testing.T) {
	var gotQuery string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"jobs":[]}`))
	})
	t.Setenv(envBearerToken, "test-token")

	if _, err := runCLI(t, "--url", srv.URL, "jobs", "list", "--workspace", "ws-9", "--limit", "5"); err != nil {
		t.Fatalf("jobs list error = %v", err)
	}
	for _, want := range []string{"workspace_id=ws-9", "resource=workspace", "limit=5"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestCall_YAMLOutput(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/inventories/inv-1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"inv-1","location":"us-south"}`))
	})
	t.Setenv(envBearerToken, "test-token")

	out, err := runCLI(t, "--url", srv.URL, "-o", "yaml", "call", "GetInventory", "inventoryID=inv-1")
	if err != nil {
		t.Fatalf("call error = %v", err)
	}
	if !strings.Contains(out, "location: us-south") {
		t.Errorf("output = %q", out)
	}
}

func TestCall_MissingParameters(t *testing.T) {
	t.Setenv(envBearerToken, "test-token")

	_, err := runCLI(t, "--url", "http://127.0.0.1:1", "call", "DeleteWorkspace", "wID=ws-1")
	if !errors.Is(err, core.ErrMissingParameters) {
		t.Fatalf("error = %v, want ErrMissingParameters", err)
	}
}

func TestWorkspacesList_NoToken(t *testing.T) {
	t.Setenv(envBearerToken, "")

	_, err := runCLI(t, "workspaces", "list")
	if err == nil || !strings.Contains(err.Error(), "bearer token is required") {
		t.Fatalf("error = %v", err)
	}
}

func TestOperations(t *testing.T) {
	t.Setenv(envBearerToken, "")

	out, err := runCLI(t, "operations")
	if err != nil {
		t.Fatalf("operations error = %v", err)
	}
	for _, want := range []string{"ID", "METHOD", "GetWorkspace", "/v1/workspaces/{w_id}", "jobID,refreshToken"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	out, err = runCLI(t, "operations", "TemplateRepoUpload")
	if err != nil {
		t.Fatalf("operations TemplateRepoUpload error = %v", err)
	}
	for _, want := range []string{"PUT /v1/workspaces/{w_id}/template_data/{t_id}/template_repo_upload", "wID", "Path", "fileContentType"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, "operations", "Nope"); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"wID=ws-1", `tags=["a","b"]`, "name=x=y"})
	if err != nil {
		t.Fatal(err)
	}
	if params["wID"] != "ws-1" || params["name"] != "x=y" {
		t.Errorf("params = %v", params)
	}
	if tags, ok := params["tags"].([]any); !ok || len(tags) != 2 {
		t.Errorf("tags = %#v", params["tags"])
	}

	if _, err := parseParams([]string{"novalue"}); err == nil {
		t.Error("expected error for parameter without =")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "region: eu-de\nbearer_token: from-file\ntimeout: 15s\nretries: 2\noutput: yaml\n"
	if err := os.WriteFile(path, []byte(profile), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envBearerToken, "from-env")
	t.Setenv(envURL, "")
	t.Setenv(envRegion, "")
	t.Setenv(envDebug, "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Region != "eu-de" || cfg.Timeout != 15*time.Second || cfg.Retries != 2 || cfg.Output != "yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BearerToken != "from-env" {
		t.Errorf("BearerToken = %q, want env override", cfg.BearerToken)
	}
	if !cfg.Debug {
		t.Error("Debug not set from env")
	}

	c, err := cfg.NewClient()
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if got := c.Transport().BaseURL(); got != "https://eu.schematics.cloud.ibm.com" {
		t.Errorf("BaseURL = %q", got)
	}
	if got := c.Transport().RetryMax(); got != 2 {
		t.Errorf("RetryMax = %d", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{BearerToken: "t", Output: "json"}, ""},
		{"no token", Config{Output: "json"}, "bearer token is required"},
		{"bad region", Config{BearerToken: "t", Region: "xx", Output: "json"}, "unknown region"},
		{"region ignored with url", Config{BearerToken: "t", URL: "http://x", Region: "xx", Output: "json"}, ""},
		{"negative retries", Config{BearerToken: "t", Retries: -1, Output: "json"}, "retries"},
		{"bad output", Config{BearerToken: "t", Output: "xml"}, "output must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
