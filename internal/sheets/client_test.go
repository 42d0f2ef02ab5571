package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobsheet/tracker/internal/config"
)

func testConfig(baseURL string) config.SheetsConfig {
	return config.SheetsConfig{
		BaseURL:           baseURL,
		SpreadsheetID:     "sheet-123",
		ReadRange:         "Sheet1",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
		Burst:             10,
	}
}

func TestFetchValues(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"range":"Sheet1!A1:I3","values":[["company","jobTitle"],["Acme","Engineer"]]}`))
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL))
	payload, err := c.FetchValues(context.Background())
	if err != nil {
		t.Fatalf("FetchValues() error = %v", err)
	}

	if gotPath != "/v4/spreadsheets/sheet-123/values/Sheet1" {
		t.Errorf("request path = %q", gotPath)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("payload type = %T, want map", payload)
	}
	values, ok := obj["values"].([]any)
	if !ok || len(values) != 2 {
		t.Errorf("values = %v, want 2 rows", obj["values"])
	}
}

func TestFetchValues_APIKeyInQuery(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"values":[]}`))
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.APIKey = "test-key"

	c := New(cfg)
	if _, err := c.FetchValues(context.Background()); err != nil {
		t.Fatalf("FetchValues() error = %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("key query param = %q, want %q", gotKey, "test-key")
	}
}

func TestFetchValues_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL))
	if _, err := c.FetchValues(context.Background()); err == nil {
		t.Fatal("FetchValues() expected error for 403 response")
	}
}

func TestFetchValues_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values": [`))
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL))
	if _, err := c.FetchValues(context.Background()); err == nil {
		t.Fatal("FetchValues() expected error for truncated JSON")
	}
}

func TestFetchValues_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[]}`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(testConfig(ts.URL))
	if _, err := c.FetchValues(ctx); err == nil {
		t.Fatal("FetchValues() expected error for cancelled context")
	}
}
