package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Input validation errors. All are user-correctable (HTTP 400).
var (
	ErrEmptyInput    = errors.New("text cannot be empty")
	ErrBothInputs    = errors.New("provide either text or url, not both")
	ErrTooShort      = errors.New("text is too short for reliable analysis (minimum 30 words)")
	ErrShortSummary  = errors.New("text is too short to generate a meaningful summary (minimum 40 words)")
	ErrInvalidURL    = errors.New("url must start with http:// or https://")
	ErrSchemelessURL = errors.New("input looks like a url but lacks a scheme; provide a full http(s) link")
	ErrNoKeywords    = errors.New("could not extract meaningful keywords from text")
)

// Operator-side conditions.
var (
	ErrServiceUnavailable    = errors.New("classification service is not available")
	ErrSummarizerUnavailable = errors.New("summarization service is not available")
	ErrSearchUnconfigured    = errors.New("news search api key is not configured")
)

// FetchError reports a failed retrieval of a submitted URL.
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	if e.Blocked() {
		return fmt.Sprintf("the site refused the request (HTTP %d); paste the article text instead", e.Status)
	}
	if e.Status > 0 {
		return fmt.Sprintf("failed to fetch article, HTTP status %d", e.Status)
	}
	return "failed to fetch article content from the provided url"
}

// Blocked reports whether the remote site rejected us outright.
func (e *FetchError) Blocked() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsInputError reports whether err should map to a 400 response.
func IsInputError(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return true
	}
	for _, candidate := range []error{
		ErrEmptyInput, ErrBothInputs, ErrTooShort, ErrShortSummary,
		ErrInvalidURL, ErrSchemelessURL, ErrNoKeywords,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
