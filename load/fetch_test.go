/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPFetcher_Success(t *testing.T) {
	body := `{"color": {"primary": {"value": "#2563eb"}}}`
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	content, err := f.Fetch(context.Background(), srv.URL+"/tokens.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(content) != body {
		t.Errorf("Fetch() = %q, want %q", string(content), body)
	}
	if !strings.HasPrefix(agent, "tokenwind/") {
		t.Errorf("unexpected User-Agent %q", agent)
	}
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, srv.URL+"/tokens.json")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") && !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

func TestHTTPFetcher_MaxSizeExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(WithMaxSize(50)).Fetch(context.Background(), srv.URL+"/tokens.json")
	if !errors.Is(err, ErrTooLarge) || !strings.Contains(err.Error(), "exceeds maximum size") {
		t.Errorf("expected max size error, got: %v", err)
	}
}

func TestHTTPFetcher_ExactlyMaxSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 50)))
	}))
	defer srv.Close()

	content, err := NewHTTPFetcher(WithMaxSize(50)).Fetch(context.Background(), srv.URL+"/tokens.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(content) != 50 {
		t.Errorf("len(content) = %d, want 50", len(content))
	}
}

func TestHTTPFetcher_ClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(WithTimeout(50*time.Millisecond)).Fetch(context.Background(), srv.URL+"/tokens.json")
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

func TestHTTPFetcher_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher().Fetch(context.Background(), srv.URL+"/tokens.json")
	var status *StatusError
	if !errors.As(err, &status) || status.Code != http.StatusNotFound {
		t.Fatalf("expected StatusError, got: %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 in %q", err.Error())
	}
}

func TestIsRemote(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/tokens.json": true,
		"http://localhost:8080/t.json":    true,
		"tokens/**/*.json":                false,
		"/abs/https.json":                 false,
	}
	for in, want := range tests {
		if got := IsRemote(in); got != want {
			t.Errorf("IsRemote(%q) = %v, want %v", in, got, want)
		}
	}
}
