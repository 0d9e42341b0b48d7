package domain

import "time"

// AnalysisInput carries exactly one of raw article text or an article URL.
type AnalysisInput struct {
	Text string
	URL  string
}

// ExtractedContent is the normalized text a request is analyzed against.
// It is built once per request and never mutated afterwards.
type ExtractedContent struct {
	Text         string
	WordCount    int
	SourceDomain string
	Preview      string
	Warning      string
}

// Sentiment labels emitted by the classification collector.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Authenticity labels emitted by the classification collector.
type Authenticity string

const (
	AuthenticityReal      Authenticity = "Real"
	AuthenticityFake      Authenticity = "Fake"
	AuthenticityUncertain Authenticity = "Uncertain"
	AuthenticityUnknown   Authenticity = "Unknown"
)

// ClassificationSignal is the model-based evidence for one article.
// Confidences are percentages in [0,100].
type ClassificationSignal struct {
	Sentiment              Sentiment
	SentimentConfidence    float64
	Authenticity           Authenticity
	AuthenticityConfidence float64
	UsedFallbackModel      bool
	KeyTopics              []string
}

// LabelScore is one class probability reported by the inference service.
type LabelScore struct {
	Label string
	Score float64
}

// ModelOutput is the raw, validated response of the classification service,
// before collector policy (label mapping, ambiguity, overrides) is applied.
type ModelOutput struct {
	SentimentLabel     string
	SentimentScore     float64
	SentimentScores    []LabelScore
	AuthenticityLabel  string
	AuthenticityScore  float64
	AuthenticityScores []LabelScore
	UsedFallback       bool
}

// DomainStatus classifies a source hostname's reputation.
type DomainStatus string

const (
	DomainTrusted    DomainStatus = "Trusted"
	DomainUntrusted  DomainStatus = "Untrusted"
	DomainSuspicious DomainStatus = "Suspicious"
	DomainUnknown    DomainStatus = "Unknown"
)

// DomainVerdict is the static reputation lookup result for a source domain.
type DomainVerdict struct {
	Domain    string
	Status    DomainStatus
	BaseScore int
}

// VerifiedSource is a corroborating article whose domain is on the trusted list.
type VerifiedSource struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	SourceName string `json:"sourceName"`
}

// RelatedArticle is an on-topic article outside the trusted list.
type RelatedArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
}

// VerificationResult holds the cross-verification evidence. A failed search
// is recorded here, never surfaced as a request error.
type VerificationResult struct {
	VerifiedSources []VerifiedSource
	RelatedArticles []RelatedArticle
	SearchFailed    bool
	SearchError     string
}

// SearchArticle is one article returned by the external search provider.
type SearchArticle struct {
	Title       string
	URL         string
	Source      string
	PublishedAt string
	Description string
}

// SearchResponse mirrors the provider's envelope.
type SearchResponse struct {
	Status   string
	Articles []SearchArticle
	Message  string
}

// ReasoningStage is one stage-tagged sentence of the trust explanation.
// Stages appear in a fixed order: model, domain, verification.
type ReasoningStage struct {
	Stage    string `json:"stage"`
	Sentence string `json:"sentence"`
}

// ScoreComponents records each stage's clamped contribution to the score,
// so 50 + Model + Domain + Verification always equals the final score.
type ScoreComponents struct {
	Model        int `json:"model"`
	Domain       int `json:"domain"`
	Verification int `json:"verification"`
}

// TrustAssessment is the aggregator's sole output.
type TrustAssessment struct {
	Score      int
	Reasoning  []ReasoningStage
	Components ScoreComponents
}

// AnalysisReport is everything the analyze use case produces for one request.
type AnalysisReport struct {
	Content      ExtractedContent
	Signal       ClassificationSignal
	Verdict      *DomainVerdict
	Verification VerificationResult
	Assessment   TrustAssessment
	Reasoning    string
	Summary      string
	SummaryError string
	AnalyzedAt   time.Time
}
