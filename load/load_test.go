/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/internal/mapfs"
	"bennypowers.dev/tokenwind/schema"
	"bennypowers.dev/tokenwind/token"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func values(tokens []*token.Token) map[string]string {
	result := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		result[tok.DotPath()] = tok.Value
	}
	return result
}

func TestTokens_MergeAndResolve(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/tokens/base.json", `{
  "color": {
    "primary": { "value": "#2563eb" },
    "link": { "value": "{color.primary}" }
  },
  "spacing": { "sm": { "value": 4 } }
}`, 0644)
	mfs.AddFile("/p/tokens/override.yaml", "color:\n  primary:\n    value: \"#1d4ed8\"\n", 0644)

	tokens, err := Tokens(context.Background(), []string{"/p/tokens/base.json", "/p/tokens/override.yaml"}, Options{FS: mfs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].DotPath() != "color.primary" || tokens[0].FilePath != "/p/tokens/override.yaml" {
		t.Errorf("override should keep the first position, got %s from %s", tokens[0].DotPath(), tokens[0].FilePath)
	}

	want := map[string]string{
		"color.primary": "#1d4ed8",
		"color.link":    "#1d4ed8",
		"spacing.sm":    "4",
	}
	if diff := cmp.Diff(want, values(tokens)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens_MissingFile(t *testing.T) {
	_, err := Tokens(context.Background(), []string{"/nope.json"}, Options{FS: mapfs.New()})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokens_Strict(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/a.json", `{"a": {"value": "{missing.token}"}}`, 0644)

	if _, err := Tokens(context.Background(), []string{"/p/a.json"}, Options{FS: mfs}); err != nil {
		t.Errorf("lenient load failed: %v", err)
	}
	_, err := Tokens(context.Background(), []string{"/p/a.json"}, Options{FS: mfs, Strict: true})
	if !errors.Is(err, schema.ErrUnresolvedReference) {
		t.Errorf("expected ErrUnresolvedReference, got %v", err)
	}
}

type mockFetcher struct {
	content map[string]string
	calls   []string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.calls = append(m.calls, url)
	c, ok := m.content[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(c), nil
}

func TestTokens_Remote(t *testing.T) {
	url := "https://example.com/brand.json"
	fetcher := &mockFetcher{content: map[string]string{
		url: `{"brand": {"color": {"primary": {"value": "#111"}}}}`,
	}}
	mfs := mapfs.New()
	mfs.AddFile("/p/base.json", `{"color": {"primary": {"value": "#222"}}}`, 0644)

	tokens, err := Tokens(context.Background(), []string{"/p/base.json", url}, Options{FS: mfs, Fetcher: fetcher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 || tokens[1].FilePath != url {
		t.Errorf("unexpected tokens %v", values(tokens))
	}
	if len(fetcher.calls) != 1 {
		t.Errorf("expected one fetch, got %v", fetcher.calls)
	}
}

func TestTokens_RemoteWithoutFetcher(t *testing.T) {
	_, err := Tokens(context.Background(), []string{"https://example.com/t.json"}, Options{FS: mapfs.New()})
	if !errors.Is(err, ErrNoFetcher) {
		t.Errorf("expected ErrNoFetcher, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	a := []*token.Token{
		{Path: []string{"x"}, Value: "1", FilePath: "a"},
		{Path: []string{"y"}, Value: "2", FilePath: "a"},
	}
	b := []*token.Token{
		{Path: []string{"z"}, Value: "3", FilePath: "b"},
		{Path: []string{"x"}, Value: "4", FilePath: "b"},
	}
	merged := Merge(a, b)
	var got []string
	for _, tok := range merged {
		got = append(got, tok.DotPath()+"="+tok.Value)
	}
	expected := []string{"x=4", "y=2", "z=3"}
	if len(got) != len(expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("got %v, expected %v", got, expected)
			break
		}
	}
}
