package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astrasync/astrasync-client/internal/app"
	"github.com/astrasync/astrasync-client/internal/config"
)

func TestParsePayload(t *testing.T) {
	v, err := parsePayload([]byte("  "))
	if err != nil {
		t.Fatalf("parsePayload blank: %v", err)
	}
	if m, ok := v.(map[string]any); !ok || len(m) != 0 {
		t.Fatalf("expected empty object, got %#v", v)
	}
	if _, err := parsePayload([]byte("{bad")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestReadObjectRejectsNonObject(t *testing.T) {
	if _, err := readObject("-", strings.NewReader("[1,2]")); err == nil {
		t.Fatalf("expected error for array payload")
	}
}

func TestSubmitCommandPostsFile(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submit_data" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	file := filepath.Join(t.TempDir(), "entry.json")
	if err := os.WriteFile(file, []byte(`{"date":"2025-06-01","steps":9000}`), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	a, err := app.New(&config.Config{APIBaseURL: srv.URL, OutputFormat: config.OutputJSON, UserID: "demo_user"}, nil, nil)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	var out bytes.Buffer
	a.SetOutput(&out)

	root := rootCommand(a)
	root.SetArgs([]string{"submit", "--file", file})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if body["date"] != "2025-06-01" || body["steps"] != float64(9000) || body["user_id"] != "demo_user" {
		t.Fatalf("unexpected body %#v", body)
	}
	if !strings.Contains(out.String(), `"ok": true`) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPostCommandDefaultsToEmptyObject(t *testing.T) {
	var raw bytes.Buffer
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = raw.ReadFrom(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a, err := app.New(&config.Config{APIBaseURL: srv.URL, OutputFormat: config.OutputJSON}, nil, nil)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	var out bytes.Buffer
	a.SetOutput(&out)

	root := rootCommand(a)
	root.SetArgs([]string{"post", "/noop"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if raw.String() != "{}" {
		t.Fatalf("expected {} body, got %q", raw.String())
	}
	if strings.TrimSpace(out.String()) != "{}" {
		t.Fatalf("expected {} output, got %q", out.String())
	}
}

func TestHomeCommandPrintsBanner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ok":true,"message":"AstraSync backend running"}`))
	}))
	defer srv.Close()

	a, err := app.New(&config.Config{APIBaseURL: srv.URL, OutputFormat: config.OutputJSON}, nil, nil)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	var out bytes.Buffer
	a.SetOutput(&out)

	root := rootCommand(a)
	root.SetArgs([]string{"home"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "AstraSync backend running") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
