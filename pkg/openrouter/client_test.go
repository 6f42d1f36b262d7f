package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("test-key", "test/model", zap.NewNop())
	c.Endpoint = srv.URL
	c.Referer = "https://example.com"
	c.Title = "Example Site"
	return c
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestRequestAnalysisSuccess(t *testing.T) {
	var gotAuth, gotReferer, gotTitle, gotContentType string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(completionResponse("the analysis"))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).RequestAnalysis(context.Background(), "inspect this project")
	if err != nil {
		t.Fatalf("request analysis: %v", err)
	}
	if got != "the analysis" {
		t.Fatalf("unexpected analysis text: %q", got)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if gotReferer != "https://example.com" || gotTitle != "Example Site" {
		t.Fatalf("referer/title headers not forwarded: %q %q", gotReferer, gotTitle)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if gotBody.Model != "test/model" {
		t.Fatalf("unexpected model in body: %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "inspect this project" {
		t.Fatalf("unexpected messages in body: %+v", gotBody.Messages)
	}
}

func TestRequestAnalysisServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got, err := newTestClient(srv).RequestAnalysis(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if got != "" {
		t.Fatalf("failed call must return empty text, got %q", got)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestRequestAnalysisMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).RequestAnalysis(context.Background(), "p"); err == nil {
		t.Fatal("expected error when response has no choices")
	}
}

func TestRequestAnalysisMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).RequestAnalysis(context.Background(), "p"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestRequestAnalysisMissingKey(t *testing.T) {
	c := NewClient("", "test/model", zap.NewNop())
	if _, err := c.RequestAnalysis(context.Background(), "p"); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestRequestAnalysisOptionalHeadersOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Http-Referer"]; ok {
			t.Error("HTTP-Referer should be absent when unconfigured")
		}
		if _, ok := r.Header["X-Title"]; ok {
			t.Error("X-Title should be absent when unconfigured")
		}
		_ = json.NewEncoder(w).Encode(completionResponse("ok"))
	}))
	defer srv.Close()

	c := NewClient("k", "m", zap.NewNop())
	c.Endpoint = srv.URL
	if _, err := c.RequestAnalysis(context.Background(), "p"); err != nil {
		t.Fatalf("request analysis: %v", err)
	}
}
