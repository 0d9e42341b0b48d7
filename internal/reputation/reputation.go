package reputation

import (
	"net/url"
	"strings"

	"NewsVerifier/internal/domain"
)

// Sets holds the trusted/untrusted domain allowlists. They are built once
// from configuration and read-only afterwards, so lookups need no locking.
type Sets struct {
	trusted   map[string]struct{}
	untrusted map[string]struct{}
}

// NewSets builds immutable lookup sets from configured domain lists.
func NewSets(trusted, untrusted []string) *Sets {
	s := &Sets{
		trusted:   make(map[string]struct{}, len(trusted)),
		untrusted: make(map[string]struct{}, len(untrusted)),
	}
	for _, d := range trusted {
		s.trusted[normalizeHost(d)] = struct{}{}
	}
	for _, d := range untrusted {
		s.untrusted[normalizeHost(d)] = struct{}{}
	}
	return s
}

// Classify maps a source hostname to a reputation verdict. It is pure:
// the same domain always yields the same verdict, and www.example.com is
// treated as example.com.
func (s *Sets) Classify(host string) domain.DomainVerdict {
	h := normalizeHost(host)
	verdict := domain.DomainVerdict{Domain: h}

	switch {
	case h == "":
		verdict.Status = domain.DomainUnknown
		verdict.BaseScore = 50
	case s.contains(s.trusted, h):
		verdict.Status = domain.DomainTrusted
		verdict.BaseScore = 95
	case s.contains(s.untrusted, h):
		verdict.Status = domain.DomainUntrusted
		verdict.BaseScore = 10
	case strings.Contains(h, ".gov") || strings.Contains(h, ".edu"):
		verdict.Status = domain.DomainTrusted
		verdict.BaseScore = 90
	case strings.Contains(h, ".co") || strings.Contains(h, ".blog"):
		verdict.Status = domain.DomainSuspicious
		verdict.BaseScore = 30
	default:
		verdict.Status = domain.DomainUnknown
		verdict.BaseScore = 60
	}

	return verdict
}

// IsTrusted reports whether host is on the trusted allowlist. Used to
// partition search results; the heuristic suffix rules do not apply
// here, corroboration requires the explicit list.
func (s *Sets) IsTrusted(host string) bool {
	return s.contains(s.trusted, normalizeHost(host))
}

func (s *Sets) contains(set map[string]struct{}, host string) bool {
	_, ok := set[host]
	return ok
}

// HostFromURL extracts the normalized hostname from a raw URL, or ""
// when the URL cannot be parsed.
func HostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return normalizeHost(u.Hostname())
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
