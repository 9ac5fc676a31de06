package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/quiz"
	"go.uber.org/zap"
)

// ErrNoQuestions is returned when a trial is attempted on a corpus without questions.
var ErrNoQuestions = errors.New("question corpus is empty")

// EmptyQuestionError reports a question without candidate answers.
type EmptyQuestionError struct {
	Index int
}

func (e *EmptyQuestionError) Error() string {
	return fmt.Sprintf("question #%d has no answers", e.Index)
}

// Walker simulates random quiz completions over a fixed corpus.
type Walker struct {
	corpus *quiz.Corpus
	rng    *rand.Rand
	logger *zap.Logger
}

// NewWalker creates a walker drawing answers from rng. The walker does not own
// rng exclusively: callers may share it to keep one reproducible draw sequence.
func NewWalker(corpus *quiz.Corpus, rng *rand.Rand, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{corpus: corpus, rng: rng, logger: logger}
}

// RandomWalk runs steps trials. Each trial answers every question at random,
// averages the normalized ratings of the picked answers and selects a persona,
// penalizing personas already picked earlier in this walk by boost per pick.
// The returned counter holds exactly steps selections.
func (w *Walker) RandomWalk(weights quiz.Weights, steps int, boost float64) (Counter, error) {
	counts := make(Counter)
	scorer := matching.NewScorer(weights)

	for trial := 0; trial < steps; trial++ {
		answers, err := w.pickAnswers()
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		profile, err := scorer.Profile(answers, w.corpus.Ratings)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		match, err := scorer.Select(profile, w.corpus.Roster, counts, boost)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		counts[match.Persona.Name]++

		if ce := w.logger.Check(zap.DebugLevel, "trial"); ce != nil {
			ce.Write(
				zap.Int("trial", trial),
				zap.Strings("answers", answers),
				zap.String("persona", match.Persona.Name),
				zap.Float64("similarity", match.Similarity),
				zap.Float64("adjusted", match.Adjusted),
			)
		}
	}

	return counts, nil
}

func (w *Walker) pickAnswers() ([]string, error) {
	questions := w.corpus.Questions
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		if len(q.Answers) == 0 {
			return nil, &EmptyQuestionError{Index: i}
		}
		answers = append(answers, q.Answers[w.rng.Intn(len(q.Answers))])
	}
	return answers, nil
}
