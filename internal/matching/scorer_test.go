package matching

import (
	"strings"
	"testing"

	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/quiz/quiztest"
)

func TestScorerSnapshotsWeights(t *testing.T) {
	weights := quiz.Weights{"y": 2, "x": 1}
	scorer := NewScorer(weights)

	if got := strings.Join(scorer.Traits(), ","); got != "x,y" {
		t.Fatalf("expected sorted traits x,y, got %s", got)
	}

	profile := quiz.TraitScores{"x": 0.4, "y": 0.9}
	ratings := quiz.TraitScores{"x": 8, "y": 3}

	before, err := scorer.Similarity(profile, ratings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A trait added later would be missing from both vectors if it were picked up.
	weights["y"] = 100
	weights["z"] = 1

	after, err := scorer.Similarity(profile, ratings)
	if err != nil {
		t.Fatalf("scorer must keep its trait order: %v", err)
	}
	if before != after {
		t.Fatalf("scorer must keep its weights: %v != %v", before, after)
	}
}

func TestScorerAgreesWithPackageFunctions(t *testing.T) {
	corpus := quiztest.Corpus()
	weights := quiz.Weights{"x": 1.3, "y": 0.7}
	scorer := NewScorer(weights)
	counts := map[string]int{"Dunker": 2, "Balanced": 1}

	for _, answers := range [][]string{{"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}} {
		profile, err := scorer.Profile(answers, corpus.Ratings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, err := Profile(answers, corpus.Ratings, weights)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for trait, v := range want {
			if profile[trait] != v {
				t.Fatalf("answers %v: profile mismatch %v vs %v", answers, profile, want)
			}
		}

		got, err := scorer.Select(profile, corpus.Roster, counts, DefaultDiversityBoost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expect, err := Select(profile, corpus.Roster, weights, counts, DefaultDiversityBoost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Index != expect.Index || got.Adjusted != expect.Adjusted {
			t.Fatalf("answers %v: scorer picked %+v, Select picked %+v", answers, got, expect)
		}
	}
}
