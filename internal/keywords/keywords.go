package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMax is the number of keywords extracted when callers have no
// reason to ask for more.
const DefaultMax = 5

var wordExpr = regexp.MustCompile(`[a-zA-Z]{3,}`)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// Extract returns up to max salient terms from text, ranked by frequency
// descending. Ties keep first-occurrence order, so equal-frequency inputs
// always produce the same sequence. An empty result means no usable tokens
// survived filtering; callers must treat that as a failure, not as data.
func Extract(text string, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}

	counts := map[string]int{}
	var order []string
	for _, token := range wordExpr.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[token]; stop {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}
