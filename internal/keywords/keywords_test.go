package keywords

import (
	"reflect"
	"testing"
)

func TestExtractRanksByFrequency(t *testing.T) {
	t.Parallel()

	text := "economy economy economy inflation inflation markets"
	got := Extract(text, 5)
	want := []string{"economy", "inflation", "markets"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractStableTieBreak(t *testing.T) {
	t.Parallel()

	// cat and dog tie at two occurrences, bird trails with one; order
	// must follow first occurrence.
	got := Extract("cat dog cat dog bird", 5)
	want := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractFiltersStopWordsAndShortTokens(t *testing.T) {
	t.Parallel()

	got := Extract("the and is at by it of election results election", 5)
	want := []string{"election", "results"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractHonorsMax(t *testing.T) {
	t.Parallel()

	got := Extract("alpha beta gamma delta epsilon zeta", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 keywords, got %d: %v", len(got), got)
	}
	if got[0] != "alpha" {
		t.Fatalf("expected alpha first, got %s", got[0])
	}
}

func TestExtractEmptyResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "only stop words", text: "the and or but"},
		{name: "only short tokens", text: "a b cd ef"},
		{name: "digits only", text: "123 456 789"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Extract(tt.text, 5); len(got) != 0 {
				t.Fatalf("expected no keywords, got %v", got)
			}
		})
	}
}

func TestExtractLowercasesTokens(t *testing.T) {
	t.Parallel()

	got := Extract("Election ELECTION election turnout", 2)
	want := []string{"election", "turnout"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
