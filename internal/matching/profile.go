package matching

import (
	"fmt"

	"github.com/spigell/lequiz/internal/quiz"
)

// MissingAnswerError reports an answer with no entry in the rating corpus.
type MissingAnswerError struct {
	Answer string
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("answer %q has no ratings", e.Answer)
}

// Profile looks up, normalizes and averages the ratings of the given answers.
func Profile(answers []string, ratings quiz.Ratings, weights quiz.Weights) (quiz.TraitScores, error) {
	return NewScorer(weights).Profile(answers, ratings)
}
