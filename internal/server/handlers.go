package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"NewsVerifier/internal/domain"
)

type analyzeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// analyzeResponse combines the classification signal and the trust
// assessment for one article.
type analyzeResponse struct {
	Sentiment              domain.Sentiment        `json:"sentiment"`
	SentimentConfidence    float64                 `json:"sentimentConfidence"`
	Authenticity           domain.Authenticity     `json:"authenticity"`
	AuthenticityConfidence float64                 `json:"authenticityConfidence"`
	UsedFallbackModel      bool                    `json:"usedFallbackModel"`
	KeyTopics              []string                `json:"keyTopics"`
	TrustScore             int                     `json:"trustScore"`
	Reasoning              string                  `json:"reasoning"`
	ReasoningStages        []domain.ReasoningStage `json:"reasoningStages"`
	Components             domain.ScoreComponents  `json:"components"`
	SourceDomain           string                  `json:"sourceDomain,omitempty"`
	DomainStatus           domain.DomainStatus     `json:"domainStatus,omitempty"`
	VerifiedSources        []domain.VerifiedSource `json:"verifiedSources"`
	RelatedArticles        []domain.RelatedArticle `json:"relatedArticles"`
	VerificationWarning    string                  `json:"verificationWarning,omitempty"`
	WordCount              int                     `json:"wordCount"`
	Text                   string                  `json:"text"`
	ExtractedText          string                  `json:"extractedText"`
	ParseWarning           string                  `json:"parseWarning,omitempty"`
	Summary                string                  `json:"summary,omitempty"`
	SummaryError           string                  `json:"summaryError,omitempty"`
	AnalysisTimestamp      string                  `json:"analysisTimestamp"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body must be JSON with a text or url field")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), domain.AnalysisInput{Text: req.Text, URL: req.URL})
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	resp := analyzeResponse{
		Sentiment:              report.Signal.Sentiment,
		SentimentConfidence:    report.Signal.SentimentConfidence,
		Authenticity:           report.Signal.Authenticity,
		AuthenticityConfidence: report.Signal.AuthenticityConfidence,
		UsedFallbackModel:      report.Signal.UsedFallbackModel,
		KeyTopics:              report.Signal.KeyTopics,
		TrustScore:             report.Assessment.Score,
		Reasoning:              report.Reasoning,
		ReasoningStages:        report.Assessment.Reasoning,
		Components:             report.Assessment.Components,
		VerifiedSources:        emptyIfNilSources(report.Verification.VerifiedSources),
		RelatedArticles:        emptyIfNilRelated(report.Verification.RelatedArticles),
		WordCount:              report.Content.WordCount,
		Text:                   truncateEcho(report.Content.Text),
		ExtractedText:          report.Content.Preview,
		ParseWarning:           report.Content.Warning,
		Summary:                report.Summary,
		SummaryError:           report.SummaryError,
		AnalysisTimestamp:      report.AnalyzedAt.Format(time.RFC3339),
	}
	if report.Verdict != nil {
		resp.SourceDomain = report.Verdict.Domain
		resp.DomainStatus = report.Verdict.Status
	}
	if report.Verification.SearchFailed {
		resp.VerificationWarning = report.Verification.SearchError
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body must be JSON with a text or url field")
		return
	}

	summary, err := s.summarizer.Summarize(r.Context(), domain.AnalysisInput{Text: req.Text, URL: req.URL})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSummarizerUnavailable):
			s.writeError(w, http.StatusServiceUnavailable, domain.ErrSummarizerUnavailable.Error())
		case domain.IsInputError(err):
			s.writeError(w, http.StatusBadRequest, userMessage(err))
		default:
			s.logError("summarize failed", err)
			s.writeError(w, http.StatusInternalServerError, "failed to summarize text")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	var text string
	if r.Method == http.MethodPost {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "request body must be JSON with a text field")
			return
		}
		text = req.Text
	} else {
		text = r.URL.Query().Get("text")
	}

	result, err := s.similar.Find(r.Context(), text)
	if err != nil {
		switch {
		case domain.IsInputError(err):
			s.writeError(w, http.StatusBadRequest, userMessage(err))
		case errors.Is(err, domain.ErrSearchUnconfigured):
			s.writeError(w, http.StatusInternalServerError, domain.ErrSearchUnconfigured.Error())
		default:
			s.logError("similar search failed", err)
			s.writeError(w, http.StatusInternalServerError, "failed to fetch news articles, please try again later")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	modelStatus := "Model not loaded"
	if s.classifierReady {
		modelStatus = "Model loaded"
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"modelStatus":      modelStatus,
		"summarizerLoaded": s.summarizerReady,
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message":   "News credibility analysis API is running",
		"endpoints": []string{"/analyze", "/similar", "/summarize", "/health"},
	})
}

// writeAnalysisError maps the error taxonomy to HTTP statuses: input and
// fetch problems are the caller's to fix (400), a missing classification
// service is an operator problem (500).
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsInputError(err):
		s.writeError(w, http.StatusBadRequest, userMessage(err))
	case errors.Is(err, domain.ErrServiceUnavailable):
		s.writeError(w, http.StatusInternalServerError, domain.ErrServiceUnavailable.Error())
	default:
		s.logError("analysis failed", err)
		s.writeError(w, http.StatusInternalServerError, "sentiment analysis failed, the model encountered an error while processing your text")
	}
}

// userMessage unwraps to the taxonomy error so callers see the stable,
// user-facing sentence rather than internal wrapping context.
func userMessage(err error) string {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Error()
	}
	for _, candidate := range []error{
		domain.ErrEmptyInput, domain.ErrBothInputs, domain.ErrTooShort, domain.ErrShortSummary,
		domain.ErrInvalidURL, domain.ErrSchemelessURL, domain.ErrNoKeywords,
	} {
		if errors.Is(err, candidate) {
			return candidate.Error()
		}
	}
	return err.Error()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logError("encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, "error", err)
	}
}

func truncateEcho(text string) string {
	if len(text) <= 100 {
		return text
	}
	return text[:100] + "..."
}

func emptyIfNilSources(sources []domain.VerifiedSource) []domain.VerifiedSource {
	if sources == nil {
		return []domain.VerifiedSource{}
	}
	return sources
}

func emptyIfNilRelated(articles []domain.RelatedArticle) []domain.RelatedArticle {
	if articles == nil {
		return []domain.RelatedArticle{}
	}
	return articles
}
