package simulation

import (
	"errors"
	"maps"
	"math/rand"
	"testing"

	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/quiz/quiztest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestWalker(corpus *quiz.Corpus, seed int64) *Walker {
	return NewWalker(corpus, rand.New(rand.NewSource(seed)), zap.NewNop())
}

func TestRandomWalkZeroSteps(t *testing.T) {
	// Nothing is sampled, so even an unusable corpus yields an empty counter.
	w := newTestWalker(&quiz.Corpus{}, 1)

	counts, err := w.RandomWalk(quiz.Weights{"x": 1}, 0, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty counter, got %v", counts)
	}
}

func TestRandomWalkCountsEveryTrial(t *testing.T) {
	t.Parallel()

	for _, steps := range []int{1, 10, 57, 500} {
		w := newTestWalker(quiztest.Corpus(), int64(steps))
		counts, err := w.RandomWalk(quiz.Weights{"x": 1, "y": 1}, steps, 0.2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts.Total() != steps {
			t.Fatalf("expected %d selections, got %d (%v)", steps, counts.Total(), counts)
		}
	}
}

func TestRandomWalkIsReproducible(t *testing.T) {
	weights := quiz.Weights{"x": 0.7, "y": 1.3}

	first, err := newTestWalker(quiztest.Corpus(), 42).RandomWalk(weights, 200, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestWalker(quiztest.Corpus(), 42).RandomWalk(weights, 200, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !maps.Equal(first, second) {
		t.Fatalf("same seed produced different walks: %v vs %v", first, second)
	}
}

func TestRandomWalkWithoutBoostStaysOnA(t *testing.T) {
	// Both answers lead to A: "high" by similarity 1, "low" by roster order
	// since the zero profile scores 0 against everyone.
	w := newTestWalker(quiztest.TwoPersonas(), 7)

	counts, err := w.RandomWalk(quiz.Weights{"x": 1}, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts["A"] != 20 || counts.Distinct() != 1 {
		t.Fatalf("expected all 20 picks on A, got %v", counts)
	}
}

func TestRandomWalkBoostSpreadsPicks(t *testing.T) {
	w := newTestWalker(quiztest.TwoPersonas(), 7)

	counts, err := w.RandomWalk(quiz.Weights{"x": 1}, 200, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Distinct() != 2 {
		t.Fatalf("expected the penalty to reach B, got %v", counts)
	}
}

func TestRandomWalkErrors(t *testing.T) {
	weights := quiz.Weights{"x": 1}

	_, err := newTestWalker(&quiz.Corpus{Roster: quiztest.TwoPersonas().Roster}, 1).RandomWalk(weights, 1, 0.2)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}

	corpus := quiztest.TwoPersonas()
	corpus.Questions = append(corpus.Questions, quiz.Question{Text: "empty"})
	_, err = newTestWalker(corpus, 1).RandomWalk(weights, 1, 0.2)
	var empty *EmptyQuestionError
	if !errors.As(err, &empty) || empty.Index != 1 {
		t.Fatalf("expected EmptyQuestionError for question 1, got %v", err)
	}

	corpus = quiztest.TwoPersonas()
	corpus.Questions[0].Answers = []string{"unrated"}
	_, err = newTestWalker(corpus, 1).RandomWalk(weights, 1, 0.2)
	var unknown *matching.MissingAnswerError
	if !errors.As(err, &unknown) || unknown.Answer != "unrated" {
		t.Fatalf("expected MissingAnswerError, got %v", err)
	}

	corpus = quiztest.TwoPersonas()
	corpus.Roster = nil
	_, err = newTestWalker(corpus, 1).RandomWalk(weights, 1, 0.2)
	if !errors.Is(err, matching.ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestRandomWalkLogsTrialsAtDebug(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	w := NewWalker(quiztest.TwoPersonas(), rand.New(rand.NewSource(3)), zap.New(core))

	if _, err := w.RandomWalk(quiz.Weights{"x": 1}, 3, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("trial").All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 trial entries, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["persona"]; !ok {
		t.Fatalf("expected persona field, got %v", entries[0].ContextMap())
	}
}

func TestNewRand(t *testing.T) {
	r1, seed := NewRand(99)
	if seed != 99 {
		t.Fatalf("expected seed 99, got %d", seed)
	}
	r2 := rand.New(rand.NewSource(99))
	if r1.Int63() != r2.Int63() {
		t.Fatalf("expected generator seeded with 99")
	}

	if _, seed := NewRand(0); seed == 0 {
		t.Fatalf("expected a zero seed to be replaced")
	}
}
