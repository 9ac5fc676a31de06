package matching

import "github.com/spigell/lequiz/internal/quiz"

// DefaultDiversityBoost is the per-selection penalty the quiz applies.
const DefaultDiversityBoost = 0.2

// Match is the outcome of a persona selection.
type Match struct {
	Persona    quiz.Persona
	Index      int
	Similarity float64
	// Adjusted is the similarity minus the repetition penalty.
	Adjusted float64
}

// Select returns the persona maximizing similarity minus boost times the number
// of times it was already chosen according to counts. Ties go to the persona
// that comes first in the roster. counts is read, never modified.
func Select(profile quiz.TraitScores, roster quiz.Roster, weights quiz.Weights, counts map[string]int, boost float64) (Match, error) {
	return NewScorer(weights).Select(profile, roster, counts, boost)
}

// Average returns, for every weighted trait, the mean of that trait across the
// normalized scores of the given answers. answers and profiles are parallel.
func Average(answers []string, profiles []quiz.TraitScores, weights quiz.Weights) (quiz.TraitScores, error) {
	return NewScorer(weights).Average(answers, profiles)
}
