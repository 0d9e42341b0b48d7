package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"NewsVerifier/internal/collector"
	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/keywords"
	"NewsVerifier/internal/ports"
)

const (
	similarPageSize = 5
	similarWindow   = 30 * 24 * time.Hour
)

// SimilarResult is the standalone related-article search payload.
type SimilarResult struct {
	QueryText     string                 `json:"queryText"`
	KeywordsUsed  []string               `json:"keywordsUsed"`
	ArticlesFound int                    `json:"articlesFound"`
	Articles      []domain.SearchArticle `json:"articles"`
}

// SimilarFinder runs the related-article search as its own product:
// unlike the analyze path, where search is a soft signal, here a provider
// failure is a hard error.
type SimilarFinder struct {
	searcher ports.ArticleSearcher
	now      func() time.Time
}

// NewSimilarFinder wires the search adapter.
func NewSimilarFinder(searcher ports.ArticleSearcher) *SimilarFinder {
	return &SimilarFinder{searcher: searcher, now: time.Now}
}

// Find extracts keywords from text and returns matching recent coverage.
func (f *SimilarFinder) Find(ctx context.Context, text string) (SimilarResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SimilarResult{}, domain.ErrEmptyInput
	}
	if f.searcher == nil {
		return SimilarResult{}, domain.ErrSearchUnconfigured
	}

	terms := keywords.Extract(text, keywords.DefaultMax)
	if len(terms) == 0 {
		return SimilarResult{}, domain.ErrNoKeywords
	}

	query := collector.BuildQuery(terms)
	resp, err := f.searcher.Search(ctx, query, f.now().Add(-similarWindow), similarPageSize)
	if err != nil {
		return SimilarResult{}, fmt.Errorf("search related articles: %w", err)
	}
	if resp.Status != "ok" {
		return SimilarResult{}, fmt.Errorf("news search provider error: %s", resp.Message)
	}

	result := SimilarResult{
		QueryText:    truncateQuery(text),
		KeywordsUsed: terms[:min(len(terms), 3)],
	}
	for _, article := range resp.Articles {
		if article.Title == "" || article.URL == "" {
			continue
		}
		article.Description = truncateDescription(article.Description)
		result.Articles = append(result.Articles, article)
	}
	result.ArticlesFound = len(result.Articles)

	return result, nil
}

func truncateQuery(text string) string {
	if len(text) <= 100 {
		return text
	}
	return text[:100] + "..."
}

func truncateDescription(description string) string {
	if len(description) <= 200 {
		return description
	}
	return description[:200] + "..."
}
