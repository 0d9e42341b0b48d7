// Package trust implements the evidence aggregation policy: ordered,
// clamped additive adjustments over a neutral baseline, with one
// stage-tagged reasoning sentence per evidence source.
package trust

import (
	"fmt"

	"NewsVerifier/internal/domain"
)

// Reasoning stage tags, in their fixed emission order.
const (
	StageModel        = "model"
	StageDomain       = "domain"
	StageVerification = "verification"
)

const baseScore = 50

// Weight constants for each adjustment. The score is clamped to [0,100]
// after every step, never only at the end, so an intermediate overflow
// cannot silently absorb a later penalty.
const (
	realWeight = 30
	fakeWeight = 40

	negativeSentimentPenalty = 5
	strongSentimentPenalty   = 5
	strongSentimentThreshold = 90

	trustedDomainBonus      = 18
	untrustedDomainPenalty  = 20
	suspiciousDomainPenalty = 12
	corroboratedSuspicious  = 5
	unknownDomainPenalty    = 5

	verifiedSourcesBonus = 22
	relatedOnlyBonus     = 10
	noCoveragePenalty    = 15
)

// Aggregate combines the three evidence signals into a bounded trust
// assessment. It is pure and total: every input variant, including an
// absent domain verdict and a failed search, yields a valid assessment.
func Aggregate(signal domain.ClassificationSignal, verdict *domain.DomainVerdict, verification domain.VerificationResult) domain.TrustAssessment {
	score := baseScore
	assessment := domain.TrustAssessment{}

	score, modelDelta, modelSentence := applyModelStage(score, signal)
	assessment.Components.Model = modelDelta
	assessment.Reasoning = append(assessment.Reasoning, domain.ReasoningStage{Stage: StageModel, Sentence: modelSentence})

	score, domainDelta, domainSentence := applyDomainStage(score, verdict, verification)
	assessment.Components.Domain = domainDelta
	assessment.Reasoning = append(assessment.Reasoning, domain.ReasoningStage{Stage: StageDomain, Sentence: domainSentence})

	score, verifyDelta, verifySentence := applyVerificationStage(score, verification)
	assessment.Components.Verification = verifyDelta
	assessment.Reasoning = append(assessment.Reasoning, domain.ReasoningStage{Stage: StageVerification, Sentence: verifySentence})

	assessment.Score = score
	return assessment
}

func applyModelStage(score int, signal domain.ClassificationSignal) (int, int, string) {
	start := score

	switch signal.Authenticity {
	case domain.AuthenticityReal:
		score = clamp(score + scale(realWeight, signal.AuthenticityConfidence))
	case domain.AuthenticityFake:
		score = clamp(score - scale(fakeWeight, signal.AuthenticityConfidence))
	}

	// Extreme affect without corroborated authenticity is a mild red flag.
	if signal.Sentiment == domain.SentimentNegative && signal.Authenticity != domain.AuthenticityFake {
		score = clamp(score - negativeSentimentPenalty)
	}
	if signal.Sentiment == domain.SentimentPositive &&
		signal.SentimentConfidence > strongSentimentThreshold &&
		signal.Authenticity != domain.AuthenticityReal {
		score = clamp(score - strongSentimentPenalty)
	}

	return score, score - start, modelSentence(signal)
}

func modelSentence(signal domain.ClassificationSignal) string {
	switch signal.Authenticity {
	case "", domain.AuthenticityUnknown:
		if signal.Sentiment == "" {
			return "Model classification signal unavailable; the baseline score is unchanged."
		}
		return fmt.Sprintf("The model could not determine authenticity; the article reads as %s (%.1f%% confidence).",
			lower(string(signal.Sentiment)), signal.SentimentConfidence)
	case domain.AuthenticityUncertain:
		return fmt.Sprintf("The model's authenticity verdict was too close to call and is treated as uncertain; sentiment is %s (%.1f%% confidence).",
			lower(string(signal.Sentiment)), signal.SentimentConfidence)
	default:
		return fmt.Sprintf("The model classified the article as %s with %.1f%% confidence and %s sentiment (%.1f%%).",
			lower(string(signal.Authenticity)), signal.AuthenticityConfidence,
			lower(string(signal.Sentiment)), signal.SentimentConfidence)
	}
}

func applyDomainStage(score int, verdict *domain.DomainVerdict, verification domain.VerificationResult) (int, int, string) {
	if verdict == nil {
		return score, 0, "Source domain signal unavailable: the input was raw text, so no reputation lookup was possible."
	}

	start := score
	corroborated := len(verification.VerifiedSources) > 0

	var sentence string
	switch verdict.Status {
	case domain.DomainTrusted:
		score = clamp(score + trustedDomainBonus)
		sentence = fmt.Sprintf("Source domain %s is a recognized trusted outlet.", verdict.Domain)
	case domain.DomainUntrusted:
		score = clamp(score - untrustedDomainPenalty)
		sentence = fmt.Sprintf("Source domain %s is on the known untrusted or satire list.", verdict.Domain)
	case domain.DomainSuspicious:
		penalty := suspiciousDomainPenalty
		if corroborated {
			penalty = corroboratedSuspicious
		}
		score = clamp(score - penalty)
		sentence = fmt.Sprintf("Source domain %s matches suspicious hosting patterns.", verdict.Domain)
	default:
		if !corroborated {
			score = clamp(score - unknownDomainPenalty)
		}
		sentence = fmt.Sprintf("Source domain %s has no established reputation.", verdict.Domain)
	}

	return score, score - start, sentence
}

func applyVerificationStage(score int, verification domain.VerificationResult) (int, int, string) {
	if verification.SearchFailed {
		message := verification.SearchError
		if message == "" {
			message = "the search provider was unavailable"
		}
		// Absence of evidence is not evidence of fakeness: no penalty.
		return score, 0, fmt.Sprintf("Cross-verification signal unavailable: %s.", trimDot(message))
	}

	start := score
	var sentence string
	switch {
	case len(verification.VerifiedSources) > 0:
		score = clamp(score + verifiedSourcesBonus)
		sentence = fmt.Sprintf("Found %d similar report(s) from trusted sources corroborating the story.",
			len(verification.VerifiedSources))
	case len(verification.RelatedArticles) > 0:
		score = clamp(score + relatedOnlyBonus)
		sentence = fmt.Sprintf("Found %d related article(s), though none from trusted outlets.",
			len(verification.RelatedArticles))
	default:
		score = clamp(score - noCoveragePenalty)
		sentence = "No similar coverage was found; the story may be new, niche, or unverified."
	}

	return score, score - start, sentence
}

func scale(weight int, confidence float64) int {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return int(float64(weight) * confidence / 100)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func trimDot(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func lower(s string) string {
	if s == "" {
		return "unknown"
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
