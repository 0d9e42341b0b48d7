package trust

import (
	"strings"

	"NewsVerifier/internal/domain"
)

// Compose joins the aggregator's stage sentences into one ordered
// paragraph. It performs no re-ranking or filtering; keeping formatting
// out of the aggregator lets the scoring policy be tested on its own.
func Compose(reasoning []domain.ReasoningStage) string {
	sentences := make([]string, 0, len(reasoning))
	for _, stage := range reasoning {
		if s := strings.TrimSpace(stage.Sentence); s != "" {
			sentences = append(sentences, s)
		}
	}
	return strings.Join(sentences, " ")
}
