package usecase

import (
	"context"
	"fmt"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
)

// Summarizer runs the standalone summarization workflow.
type Summarizer struct {
	normalizer ports.Normalizer
	summarizer ports.Summarizer
}

// NewSummarizer wires the normalizer and the summarization adapter.
func NewSummarizer(normalizer ports.Normalizer, summarizer ports.Summarizer) *Summarizer {
	return &Summarizer{normalizer: normalizer, summarizer: summarizer}
}

// Summarize normalizes the input like the analyze path and returns an
// abstractive summary. Unlike the inline summary on analysis, a short
// article or a model failure is a hard error here.
func (s *Summarizer) Summarize(ctx context.Context, input domain.AnalysisInput) (string, error) {
	if s.summarizer == nil {
		return "", domain.ErrSummarizerUnavailable
	}

	content, err := s.normalizer.Normalize(ctx, input)
	if err != nil {
		return "", fmt.Errorf("normalize input: %w", err)
	}
	if content.WordCount < summaryMinWords {
		return "", domain.ErrShortSummary
	}

	summary, err := s.summarizer.Summarize(ctx, content.Text)
	if err != nil {
		return "", fmt.Errorf("summarize text: %w", err)
	}

	return summary, nil
}
