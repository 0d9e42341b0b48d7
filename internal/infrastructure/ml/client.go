package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
)

// Client talks to the external inference service for classification and
// summarization.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.Classifier = (*Client)(nil)
var _ ports.Summarizer = (*Client)(nil)

// NewClient creates a reusable HTTP client.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyResponse struct {
	Sentiment struct {
		Label     string       `json:"label"`
		Score     float64      `json:"score"`
		AllScores []labelScore `json:"allScores"`
	} `json:"sentiment"`
	Authenticity struct {
		Label     string       `json:"label"`
		Score     float64      `json:"score"`
		AllScores []labelScore `json:"allScores"`
	} `json:"authenticity"`
	UsedFallbackModel bool `json:"usedFallbackModel"`
}

// Classify sends text for sentiment and authenticity scoring. A response
// missing the sentiment verdict means the model never loaded and is
// reported as a service-unavailable condition, not a decode quirk.
func (c *Client) Classify(ctx context.Context, text string) (domain.ModelOutput, error) {
	if c.endpoint == "" {
		return domain.ModelOutput{}, domain.ErrServiceUnavailable
	}

	payload := map[string]any{"text": text}

	var resp classifyResponse
	if err := c.post(ctx, "/classify", payload, &resp); err != nil {
		return domain.ModelOutput{}, fmt.Errorf("classify: %w", err)
	}

	if resp.Sentiment.Label == "" {
		return domain.ModelOutput{}, fmt.Errorf("classify response has no sentiment verdict: %w", domain.ErrServiceUnavailable)
	}

	return domain.ModelOutput{
		SentimentLabel:     resp.Sentiment.Label,
		SentimentScore:     resp.Sentiment.Score,
		SentimentScores:    toLabelScores(resp.Sentiment.AllScores),
		AuthenticityLabel:  resp.Authenticity.Label,
		AuthenticityScore:  resp.Authenticity.Score,
		AuthenticityScores: toLabelScores(resp.Authenticity.AllScores),
		UsedFallback:       resp.UsedFallbackModel,
	}, nil
}

// Summarize requests an abstractive summary of the article text.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if c.endpoint == "" {
		return "", domain.ErrSummarizerUnavailable
	}

	payload := map[string]any{"text": text}

	var resp struct {
		Summary string `json:"summary"`
	}

	if err := c.post(ctx, "/summarize", payload, &resp); err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return resp.Summary, nil
}

func toLabelScores(scores []labelScore) []domain.LabelScore {
	out := make([]domain.LabelScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, domain.LabelScore{Label: s.Label, Score: s.Score})
	}
	return out
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return fmt.Errorf("unexpected status %s, close body: %v", resp.Status, closeErr)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		_ = resp.Body.Close()
		return fmt.Errorf("decode response: %w", err)
	}

	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}

	return nil
}
