package ml

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"NewsVerifier/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload["text"] == "" {
			t.Error("request carried no text")
		}

		_, _ = w.Write([]byte(`{
			"sentiment": {"label": "POSITIVE", "score": 0.91,
				"allScores": [{"label": "POSITIVE", "score": 0.91}, {"label": "NEGATIVE", "score": 0.09}]},
			"authenticity": {"label": "REAL", "score": 0.88,
				"allScores": [{"label": "REAL", "score": 0.88}, {"label": "FAKE", "score": 0.12}]},
			"usedFallbackModel": true
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	out, err := client.Classify(context.Background(), "some article text")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if out.SentimentLabel != "POSITIVE" || out.SentimentScore != 0.91 {
		t.Fatalf("unexpected sentiment: %s %v", out.SentimentLabel, out.SentimentScore)
	}
	if out.AuthenticityLabel != "REAL" {
		t.Fatalf("unexpected authenticity label: %s", out.AuthenticityLabel)
	}
	if len(out.AuthenticityScores) != 2 {
		t.Fatalf("expected 2 authenticity scores, got %d", len(out.AuthenticityScores))
	}
	if !out.UsedFallback {
		t.Fatal("fallback flag was dropped")
	}
}

func TestClassifyMissingVerdict(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.Classify(context.Background(), "text")
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClassifyUnconfigured(t *testing.T) {
	t.Parallel()

	client := NewClient("", "")
	_, err := client.Classify(context.Background(), "text")
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClassifyServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.Classify(context.Background(), "text"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summarize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"summary": "A short summary."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	summary, err := client.Summarize(context.Background(), "long article text")
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary != "A short summary." {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestSummarizeUnconfigured(t *testing.T) {
	t.Parallel()

	client := NewClient("", "")
	_, err := client.Summarize(context.Background(), "text")
	if !errors.Is(err, domain.ErrSummarizerUnavailable) {
		t.Fatalf("expected ErrSummarizerUnavailable, got %v", err)
	}
}
