package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsVerifier/internal/domain"
	"NewsVerifier/internal/ports"
	"NewsVerifier/internal/reputation"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	previewLimit = 500
	minTextWords = 30
	minURLWords  = 50
)

// Selectors for page regions that are never article prose: navigation,
// ads, related-content widgets, sidebars, cookie and newsletter banners.
var boilerplateSelectors = []string{
	"aside", "script", "style", "noscript",
	`[class*="ad"]`, `[id*="ad"]`,
	`[class*="promo"]`, `[id*="promo"]`,
	`[class*="related"]`, `[id*="related"]`,
	`[class*="sponsor"]`, `[id*="sponsor"]`,
	`[class*="sidebar"]`, `[id*="sidebar"]`,
	`[class*="recommend"]`, `[id*="recommend"]`,
	`[class*="nav"]`, `[id*="nav"]`,
	`[class*="footer"]`, `[id*="footer"]`,
	`[class*="cookie"]`, `[id*="cookie"]`,
	`[class*="newsletter"]`, `[id*="newsletter"]`,
}

var urlLikeExpr = regexp.MustCompile(`^\S+\.[a-z]{2,}(/\S*)?$`)

// Extractor normalizes analysis input into plain text, fetching and
// stripping article pages when the input is a URL.
type Extractor struct {
	client *http.Client
	logger *slog.Logger
}

var _ ports.Normalizer = (*Extractor)(nil)

// New wires an HTTP client; a nil client gets a 10s-timeout default.
func New(client *http.Client, logger *slog.Logger) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Extractor{client: client, logger: logger}
}

// Normalize validates the input variant and produces normalized content.
// Raw text shorter than 30 words and URLs without an http(s) scheme are
// rejected before any network activity.
func (e *Extractor) Normalize(ctx context.Context, input domain.AnalysisInput) (domain.ExtractedContent, error) {
	text := strings.TrimSpace(input.Text)
	rawURL := strings.TrimSpace(input.URL)

	switch {
	case text != "" && rawURL != "":
		return domain.ExtractedContent{}, domain.ErrBothInputs
	case text == "" && rawURL == "":
		return domain.ExtractedContent{}, domain.ErrEmptyInput
	case rawURL != "":
		return e.fromURL(ctx, rawURL)
	default:
		return fromText(text)
	}
}

func fromText(text string) (domain.ExtractedContent, error) {
	if urlLikeExpr.MatchString(text) {
		return domain.ExtractedContent{}, domain.ErrSchemelessURL
	}

	normalized := collapseWhitespace(text)
	words := wordCount(normalized)
	if words < minTextWords {
		return domain.ExtractedContent{}, domain.ErrTooShort
	}

	return domain.ExtractedContent{
		Text:      normalized,
		WordCount: words,
		Preview:   truncate(normalized, previewLimit),
	}, nil
}

func (e *Extractor) fromURL(ctx context.Context, rawURL string) (domain.ExtractedContent, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domain.ExtractedContent{}, domain.ErrInvalidURL
	}

	doc, err := e.fetchDocument(ctx, rawURL)
	if err != nil {
		return domain.ExtractedContent{}, err
	}

	text, warning := extractArticleText(doc)
	content := domain.ExtractedContent{
		Text:         text,
		WordCount:    wordCount(text),
		SourceDomain: reputation.HostFromURL(rawURL),
		Preview:      truncate(text, previewLimit),
		Warning:      warning,
	}

	e.debug("extracted article", "url", rawURL, "words", content.WordCount, "warning", warning != "")
	return content, nil
}

func (e *Extractor) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.debug("fetch failed", "url", pageURL, "error", err)
		return nil, &domain.FetchError{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractArticleText walks the fallback chain: article/main paragraphs with
// boilerplate removed, then all paragraphs outside boilerplate ancestry,
// then raw body text. The first attempt yielding at least 50 words wins;
// otherwise the last attempt is kept and a warning is attached.
func extractArticleText(doc *goquery.Document) (string, string) {
	removeBoilerplate(doc)

	attempts := []func(*goquery.Document) string{
		containerParagraphs,
		allParagraphs,
		bodyText,
	}

	var text string
	for _, attempt := range attempts {
		text = collapseWhitespace(attempt(doc))
		if wordCount(text) >= minURLWords {
			return text, ""
		}
	}

	warning := "Article extraction resulted in very little text. " +
		"The analyzed content may be insufficient for reliable analysis. " +
		"Please double-check the link or paste the article content yourself."
	return text, warning
}

func removeBoilerplate(doc *goquery.Document) {
	for _, selector := range boilerplateSelectors {
		doc.Find(selector).Remove()
	}
}

func containerParagraphs(doc *goquery.Document) string {
	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}
	if container.Length() == 0 {
		return ""
	}
	return joinParagraphs(container.Find("p"))
}

func allParagraphs(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		return ""
	}
	paragraphs := body.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return p.ParentsFiltered("aside, footer, nav, header").Length() == 0
	})
	return joinParagraphs(paragraphs)
}

func bodyText(doc *goquery.Document) string {
	return doc.Find("body").Text()
}

func joinParagraphs(paragraphs *goquery.Selection) string {
	var parts []string
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

func (e *Extractor) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
