package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
	"NewsVerifier/internal/reputation"
)

const (
	maxQueryKeywords = 3
	maxVerified      = 3
	maxRelated       = 5
	searchWindow     = 30 * 24 * time.Hour
	searchPageSize   = 10
	descriptionLimit = 200
)

// Verification wraps the search provider. It never returns an error:
// cross-verification is a soft signal and a failed search is recorded in
// the result instead of aborting the request.
type Verification struct {
	searcher ports.ArticleSearcher
	sets     *reputation.Sets
	logger   *slog.Logger
	now      func() time.Time
}

var _ ports.VerificationCollector = (*Verification)(nil)

// NewVerification wires the search adapter and the trusted-domain sets.
func NewVerification(searcher ports.ArticleSearcher, sets *reputation.Sets, logger *slog.Logger) *Verification {
	return &Verification{
		searcher: searcher,
		sets:     sets,
		logger:   logger,
		now:      time.Now,
	}
}

// Collect searches for independent coverage of the article's topics and
// partitions the hits into trusted corroboration and related reading.
func (v *Verification) Collect(ctx context.Context, keywords []string) domain.VerificationResult {
	if len(keywords) == 0 {
		return failed("could not extract significant keywords for cross-verification")
	}
	if v.searcher == nil {
		return failed("news search provider is not configured")
	}

	query := BuildQuery(keywords)
	from := v.now().Add(-searchWindow)

	resp, err := v.searcher.Search(ctx, query, from, searchPageSize)
	if err != nil {
		v.debug("search failed", "error", err)
		return failed(err.Error())
	}
	if resp.Status != "ok" {
		message := resp.Message
		if message == "" {
			message = "the news search provider returned an unknown error"
		}
		return failed(message)
	}

	var result domain.VerificationResult
	for _, article := range resp.Articles {
		if article.Title == "" || article.URL == "" {
			continue
		}

		host := reputation.HostFromURL(article.URL)
		if v.sets.IsTrusted(host) && len(result.VerifiedSources) < maxVerified {
			result.VerifiedSources = append(result.VerifiedSources, domain.VerifiedSource{
				Title:      article.Title,
				URL:        article.URL,
				SourceName: article.Source,
			})
			continue
		}

		if len(result.RelatedArticles) < maxRelated {
			result.RelatedArticles = append(result.RelatedArticles, domain.RelatedArticle{
				Title:       article.Title,
				URL:         article.URL,
				Source:      article.Source,
				PublishedAt: article.PublishedAt,
				Description: truncateDescription(article.Description),
			})
		}
	}

	v.debug("verification collected",
		"verified", len(result.VerifiedSources),
		"related", len(result.RelatedArticles))
	return result
}

// BuildQuery joins up to three keywords into a quoted disjunctive query.
func BuildQuery(keywords []string) string {
	if len(keywords) > maxQueryKeywords {
		keywords = keywords[:maxQueryKeywords]
	}
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		quoted = append(quoted, fmt.Sprintf("%q", k))
	}
	return strings.Join(quoted, " OR ")
}

func failed(message string) domain.VerificationResult {
	return domain.VerificationResult{SearchFailed: true, SearchError: message}
}

func truncateDescription(description string) string {
	if len(description) <= descriptionLimit {
		return description
	}
	return description[:descriptionLimit] + "..."
}

func (v *Verification) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}
