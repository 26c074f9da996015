package assistant

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubTransport struct {
	status int
	body   string
	err    error
}

func (s *stubTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     http.Header{},
	}, nil
}

func TestGenerateLocalWithoutAPIKey(t *testing.T) {
	svc := NewService(ServiceConfig{})

	got, err := svc.Generate(context.Background(), "how is the score calculated?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Source != "local" {
		t.Fatalf("source = %q, want local", got.Source)
	}
	if !strings.Contains(got.Reply, "200 to 800") {
		t.Fatalf("unexpected scoring reply: %q", got.Reply)
	}
}

func TestGenerateRejectsEmptyQuery(t *testing.T) {
	svc := NewService(ServiceConfig{})
	if _, err := svc.Generate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestGenerateUsesGemini(t *testing.T) {
	svc := NewService(ServiceConfig{
		GeminiAPIKey: "test-key",
		HTTPClient: &http.Client{Transport: &stubTransport{
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"parts":[{"text":"Practice a full section daily."}]}}]}`,
		}},
	})

	got, err := svc.Generate(context.Background(), "any study tips?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Source != "gemini" || got.Reply != "Practice a full section daily." {
		t.Fatalf("got %+v", got)
	}
}

func TestGenerateFallsBackWhenGeminiFails(t *testing.T) {
	svc := NewService(ServiceConfig{
		GeminiAPIKey: "test-key",
		HTTPClient:   &http.Client{Transport: &stubTransport{status: http.StatusInternalServerError, body: "{}"}},
	})

	got, err := svc.Generate(context.Background(), "how do I mark a question for review?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Source != "local_fallback" {
		t.Fatalf("source = %q, want local_fallback", got.Source)
	}
}
