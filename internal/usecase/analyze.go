package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/keywords"
	"NewsVerifier/internal/ports"
	"NewsVerifier/internal/reputation"
	"NewsVerifier/internal/trust"
)

// Topics reported when keyword extraction finds nothing usable.
var fallbackTopics = []string{"General", "News", "Article"}

// summaryMinWords is the threshold below which no summary is attempted.
const summaryMinWords = 40

// AnalyzerDeps wires all driven adapters into the analysis workflow.
type AnalyzerDeps struct {
	Normalizer     ports.Normalizer
	Classification ports.ClassificationCollector
	Verification   ports.VerificationCollector
	Summarizer     ports.Summarizer
	Reputation     *reputation.Sets
	Logger         *slog.Logger
}

// Analyzer implements the credibility-analysis workflow.
type Analyzer struct {
	normalizer     ports.Normalizer
	classification ports.ClassificationCollector
	verification   ports.VerificationCollector
	summarizer     ports.Summarizer
	reputation     *reputation.Sets
	logger         *slog.Logger
}

// NewAnalyzer constructs the orchestration component.
func NewAnalyzer(deps AnalyzerDeps) *Analyzer {
	return &Analyzer{
		normalizer:     deps.Normalizer,
		classification: deps.Classification,
		verification:   deps.Verification,
		summarizer:     deps.Summarizer,
		reputation:     deps.Reputation,
		logger:         deps.Logger,
	}
}

// Analyze runs the full pipeline for one request: normalize, extract
// keywords, gather the independent signals, aggregate, compose. Input
// validation failures return before any collector is invoked. The
// classification and verification collectors run concurrently; only a
// classification failure aborts the request.
func (a *Analyzer) Analyze(ctx context.Context, input domain.AnalysisInput) (domain.AnalysisReport, error) {
	content, err := a.normalizer.Normalize(ctx, input)
	if err != nil {
		return domain.AnalysisReport{}, fmt.Errorf("normalize input: %w", err)
	}

	topics := keywords.Extract(content.Text, keywords.DefaultMax)

	var verdict *domain.DomainVerdict
	if content.SourceDomain != "" {
		v := a.reputation.Classify(content.SourceDomain)
		verdict = &v
	}

	var (
		signal       domain.ClassificationSignal
		verification domain.VerificationResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var cErr error
		signal, cErr = a.classification.Collect(gctx, content.Text)
		return cErr
	})
	g.Go(func() error {
		// Verification is a soft signal; failures are folded into the
		// result and must never abort the request.
		verification = a.verification.Collect(gctx, topics)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.AnalysisReport{}, fmt.Errorf("collect classification signal: %w", err)
	}

	signal.KeyTopics = topics
	if len(signal.KeyTopics) == 0 {
		signal.KeyTopics = fallbackTopics
	}

	assessment := trust.Aggregate(signal, verdict, verification)

	report := domain.AnalysisReport{
		Content:      content,
		Signal:       signal,
		Verdict:      verdict,
		Verification: verification,
		Assessment:   assessment,
		Reasoning:    trust.Compose(assessment.Reasoning),
		AnalyzedAt:   time.Now().UTC(),
	}

	a.attachSummary(ctx, &report)

	a.info("analysis complete",
		"sentiment", signal.Sentiment,
		"authenticity", signal.Authenticity,
		"trust_score", assessment.Score,
		"verified_sources", len(verification.VerifiedSources),
		"search_failed", verification.SearchFailed)

	return report, nil
}

// attachSummary asks the summarizer for an abstract when one is wired and
// the text is long enough. Summarization failures degrade to a note on
// the report, they never fail an analysis.
func (a *Analyzer) attachSummary(ctx context.Context, report *domain.AnalysisReport) {
	if a.summarizer == nil {
		report.Summary = "Summarization model not available."
		return
	}
	if report.Content.WordCount <= summaryMinWords {
		report.Summary = "Text is too short to generate a meaningful summary."
		return
	}

	summary, err := a.summarizer.Summarize(ctx, report.Content.Text)
	if err != nil {
		report.SummaryError = fmt.Sprintf("failed to summarize text: %v", err)
		a.info("summarization degraded", "error", err)
		return
	}
	report.Summary = summary
}

func (a *Analyzer) info(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}
