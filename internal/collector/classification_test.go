package collector

import (
	"context"
	"errors"
	"testing"

	"NewsVerifier/internal/domain"
)

type stubClassifier struct {
	out   domain.ModelOutput
	err   error
	calls int
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (domain.ModelOutput, error) {
	s.calls++
	return s.out, s.err
}

func TestCollectMapsLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		out          domain.ModelOutput
		sentiment    domain.Sentiment
		authenticity domain.Authenticity
	}{
		{
			name: "plain labels",
			out: domain.ModelOutput{
				SentimentLabel: "NEGATIVE", SentimentScore: 0.8,
				AuthenticityLabel: "REAL", AuthenticityScore: 0.9,
				AuthenticityScores: []domain.LabelScore{{Label: "REAL", Score: 0.9}, {Label: "FAKE", Score: 0.1}},
			},
			sentiment:    domain.SentimentNegative,
			authenticity: domain.AuthenticityReal,
		},
		{
			name: "numbered labels",
			out: domain.ModelOutput{
				SentimentLabel: "LABEL_1", SentimentScore: 0.7,
				AuthenticityLabel: "LABEL_1", AuthenticityScore: 0.95,
				AuthenticityScores: []domain.LabelScore{{Label: "LABEL_1", Score: 0.95}, {Label: "LABEL_0", Score: 0.05}},
			},
			sentiment:    domain.SentimentPositive,
			authenticity: domain.AuthenticityFake,
		},
		{
			name: "unknown authenticity label",
			out: domain.ModelOutput{
				SentimentLabel: "NEUTRAL", SentimentScore: 0.6,
				AuthenticityLabel: "WHATEVER", AuthenticityScore: 0.9,
				AuthenticityScores: []domain.LabelScore{{Label: "WHATEVER", Score: 0.9}, {Label: "OTHER", Score: 0.1}},
			},
			sentiment:    domain.SentimentNeutral,
			authenticity: domain.AuthenticityUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewClassification(&stubClassifier{out: tt.out}, nil)
			signal, err := c.Collect(context.Background(), "neutral newsroom prose")
			if err != nil {
				t.Fatalf("Collect error: %v", err)
			}
			if signal.Sentiment != tt.sentiment {
				t.Fatalf("sentiment: expected %s, got %s", tt.sentiment, signal.Sentiment)
			}
			if signal.Authenticity != tt.authenticity {
				t.Fatalf("authenticity: expected %s, got %s", tt.authenticity, signal.Authenticity)
			}
		})
	}
}

func TestCollectAmbiguityRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []domain.LabelScore
		top    float64
		want   domain.Authenticity
	}{
		{
			name:   "near tie forces uncertain",
			scores: []domain.LabelScore{{Label: "REAL", Score: 0.52}, {Label: "FAKE", Score: 0.48}},
			top:    0.52,
			want:   domain.AuthenticityUncertain,
		},
		{
			name:   "top score in indecisive band",
			scores: []domain.LabelScore{{Label: "REAL", Score: 0.60}, {Label: "FAKE", Score: 0.40}},
			top:    0.60,
			want:   domain.AuthenticityUncertain,
		},
		{
			name:   "clear margin stays real",
			scores: []domain.LabelScore{{Label: "REAL", Score: 0.90}, {Label: "FAKE", Score: 0.10}},
			top:    0.90,
			want:   domain.AuthenticityReal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewClassification(&stubClassifier{out: domain.ModelOutput{
				SentimentLabel: "NEUTRAL", SentimentScore: 0.9,
				AuthenticityLabel:  "REAL",
				AuthenticityScore:  tt.top,
				AuthenticityScores: tt.scores,
			}}, nil)

			signal, err := c.Collect(context.Background(), "some newsroom prose")
			if err != nil {
				t.Fatalf("Collect error: %v", err)
			}
			if signal.Authenticity != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, signal.Authenticity)
			}
		})
	}
}

func TestCollectTragedyOverride(t *testing.T) {
	t.Parallel()

	c := NewClassification(&stubClassifier{out: domain.ModelOutput{
		SentimentLabel: "POSITIVE", SentimentScore: 0.97,
		AuthenticityLabel:  "REAL",
		AuthenticityScore:  0.9,
		AuthenticityScores: []domain.LabelScore{{Label: "REAL", Score: 0.9}, {Label: "FAKE", Score: 0.1}},
	}}, nil)

	signal, err := c.Collect(context.Background(), "Scientists celebrate as plane crash kills dozens")
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if signal.Sentiment != domain.SentimentNegative {
		t.Fatalf("expected override to Negative, got %s", signal.Sentiment)
	}
	if signal.SentimentConfidence > 60 {
		t.Fatalf("confidence must be capped at 60, got %v", signal.SentimentConfidence)
	}
}

func TestCollectNoOverrideWithoutTragedyTerms(t *testing.T) {
	t.Parallel()

	c := NewClassification(&stubClassifier{out: domain.ModelOutput{
		SentimentLabel: "POSITIVE", SentimentScore: 0.97,
		AuthenticityLabel:  "REAL",
		AuthenticityScore:  0.9,
		AuthenticityScores: []domain.LabelScore{{Label: "REAL", Score: 0.9}, {Label: "FAKE", Score: 0.1}},
	}}, nil)

	signal, err := c.Collect(context.Background(), "Local bakery celebrates record year of growth")
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if signal.Sentiment != domain.SentimentPositive {
		t.Fatalf("sentiment should stay Positive, got %s", signal.Sentiment)
	}
	if signal.SentimentConfidence != 97.0 {
		t.Fatalf("confidence should be unchanged, got %v", signal.SentimentConfidence)
	}
}

func TestCollectWholeWordMatching(t *testing.T) {
	t.Parallel()

	// "deadline" contains "dead" but is not a tragedy term.
	c := NewClassification(&stubClassifier{out: domain.ModelOutput{
		SentimentLabel: "POSITIVE", SentimentScore: 0.95,
		AuthenticityLabel:  "REAL",
		AuthenticityScore:  0.9,
		AuthenticityScores: []domain.LabelScore{{Label: "REAL", Score: 0.9}, {Label: "FAKE", Score: 0.1}},
	}}, nil)

	signal, err := c.Collect(context.Background(), "Team beats project deadline and celebrates success")
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if signal.Sentiment != domain.SentimentPositive {
		t.Fatalf("substring match must not trigger the override, got %s", signal.Sentiment)
	}
}

func TestCollectClassifierFailureIsFatal(t *testing.T) {
	t.Parallel()

	c := NewClassification(&stubClassifier{err: domain.ErrServiceUnavailable}, nil)
	_, err := c.Collect(context.Background(), "text")
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}
