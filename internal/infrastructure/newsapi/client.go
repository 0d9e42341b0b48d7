package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
)

// Client queries a NewsAPI-compatible article search endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var _ ports.ArticleSearcher = (*Client)(nil)

// NewClient registers the search endpoint and API key.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type searchResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		Description string `json:"description"`
	} `json:"articles"`
}

// Search runs an English-language relevancy search for query, bounded to
// articles published after from. Absence of an API key is a permanent
// condition and surfaces as ErrSearchUnconfigured.
func (c *Client) Search(ctx context.Context, query string, from time.Time, pageSize int) (domain.SearchResponse, error) {
	if c == nil || c.apiKey == "" || c.endpoint == "" {
		return domain.SearchResponse{}, domain.ErrSearchUnconfigured
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("language", "en")
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.SearchResponse{}, fmt.Errorf("news api error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("decode response: %w", err)
	}

	out := domain.SearchResponse{Status: decoded.Status, Message: decoded.Message}
	for _, a := range decoded.Articles {
		out.Articles = append(out.Articles, domain.SearchArticle{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			Description: a.Description,
		})
	}

	return out, nil
}
