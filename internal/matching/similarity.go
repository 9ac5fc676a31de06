package matching

import "github.com/spigell/lequiz/internal/quiz"

// Similarity returns the cosine similarity of the weighted profile and the
// weighted persona ratings. The profile is expected normalized while ratings
// stay on the raw scale. A zero-norm side yields 0.
func Similarity(profile, ratings quiz.TraitScores, weights quiz.Weights) (float64, error) {
	return NewScorer(weights).Similarity(profile, ratings)
}
