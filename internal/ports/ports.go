package ports

import (
	"context"
	"time"

	"NewsVerifier/internal/domain"
)

// Normalizer turns arbitrary analysis input into plain analyzable text.
type Normalizer interface {
	Normalize(ctx context.Context, input domain.AnalysisInput) (domain.ExtractedContent, error)
}

// Classifier invokes the external sentiment/authenticity inference service.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.ModelOutput, error)
}

// Summarizer generates an abstractive summary via the inference service.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ArticleSearcher queries the external article search provider.
type ArticleSearcher interface {
	Search(ctx context.Context, query string, from time.Time, pageSize int) (domain.SearchResponse, error)
}

// ClassificationCollector gathers the model signal; its failure is fatal
// for the request.
type ClassificationCollector interface {
	Collect(ctx context.Context, text string) (domain.ClassificationSignal, error)
}

// VerificationCollector gathers cross-verification evidence; it never fails,
// a degraded search is folded into the result.
type VerificationCollector interface {
	Collect(ctx context.Context, keywords []string) domain.VerificationResult
}
