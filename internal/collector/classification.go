package collector

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
)

// Ambiguity thresholds for the authenticity decision. A margin between the
// two best classes below ambiguityMargin, or a top score inside the
// ambiguity band, downgrades the label to Uncertain instead of trusting a
// low-margin model decision.
const (
	ambiguityMargin   = 0.15
	ambiguityBandLow  = 0.45
	ambiguityBandHigh = 0.65
)

// sentimentCap bounds the confidence after a tragedy override.
const sentimentCap = 60

// Tragedy, disaster and violence terms. Generic sentiment models misread
// tragic news as "positive" when the prose is emotionally neutral, so a
// Positive verdict over text containing any of these is downgraded.
var tragedyTerms = []string{
	"killed", "kills", "dead", "death", "deaths", "dies", "died",
	"crash", "crashes", "disaster", "tragedy", "massacre", "shooting",
	"bombing", "earthquake", "flood", "wildfire", "victims", "injured",
	"wounded", "attack", "explosion",
	"plane crash", "mass shooting", "death toll", "terror attack",
}

var nonLetterExpr = regexp.MustCompile(`[^a-z]+`)

// Classification wraps the inference service with the labeling policy.
type Classification struct {
	classifier ports.Classifier
	logger     *slog.Logger
}

var _ ports.ClassificationCollector = (*Classification)(nil)

// NewClassification wires the classifier adapter.
func NewClassification(classifier ports.Classifier, logger *slog.Logger) *Classification {
	return &Classification{classifier: classifier, logger: logger}
}

// Collect classifies text and applies label mapping, the ambiguity rule
// and the tragedy override. Any failure here is fatal for the request:
// classification is the irreducible minimum signal.
func (c *Classification) Collect(ctx context.Context, text string) (domain.ClassificationSignal, error) {
	if c.classifier == nil {
		return domain.ClassificationSignal{}, domain.ErrServiceUnavailable
	}

	out, err := c.classifier.Classify(ctx, text)
	if err != nil {
		return domain.ClassificationSignal{}, fmt.Errorf("collect classification: %w", err)
	}

	signal := domain.ClassificationSignal{
		Sentiment:              mapSentiment(out.SentimentLabel),
		SentimentConfidence:    toPercent(out.SentimentScore),
		Authenticity:           mapAuthenticity(out.AuthenticityLabel),
		AuthenticityConfidence: toPercent(out.AuthenticityScore),
		UsedFallbackModel:      out.UsedFallback,
	}

	if ambiguous(out.AuthenticityScore, out.AuthenticityScores) {
		signal.Authenticity = domain.AuthenticityUncertain
	}

	if signal.Sentiment == domain.SentimentPositive && containsTragedyTerm(text) {
		signal.Sentiment = domain.SentimentNegative
		if signal.SentimentConfidence > sentimentCap {
			signal.SentimentConfidence = sentimentCap
		}
		if c.logger != nil {
			c.logger.Debug("tragedy override applied", "confidence", signal.SentimentConfidence)
		}
	}

	return signal, nil
}

func mapSentiment(label string) domain.Sentiment {
	switch strings.ToUpper(label) {
	case "POSITIVE", "LABEL_1":
		return domain.SentimentPositive
	case "NEGATIVE", "LABEL_0":
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func mapAuthenticity(label string) domain.Authenticity {
	switch strings.ToUpper(label) {
	case "REAL", "LABEL_0":
		return domain.AuthenticityReal
	case "FAKE", "LABEL_1":
		return domain.AuthenticityFake
	default:
		return domain.AuthenticityUnknown
	}
}

// ambiguous applies the precision-over-recall policy: a near-tie between
// the two best classes, or a top score in the indecisive band, yields no
// usable authenticity verdict.
func ambiguous(top float64, all []domain.LabelScore) bool {
	if top >= ambiguityBandLow && top <= ambiguityBandHigh {
		return true
	}
	if len(all) < 2 {
		return false
	}

	scores := make([]float64, len(all))
	for i, s := range all {
		scores[i] = s.Score
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	return scores[0]-scores[1] < ambiguityMargin
}

func containsTragedyTerm(text string) bool {
	normalized := " " + nonLetterExpr.ReplaceAllString(strings.ToLower(text), " ") + " "
	for _, term := range tragedyTerms {
		if strings.Contains(normalized, " "+term+" ") {
			return true
		}
	}
	return false
}

func toPercent(score float64) float64 {
	return math.Round(score*1000) / 10
}
