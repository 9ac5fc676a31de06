package matching

import (
	"math"

	"github.com/spigell/lequiz/internal/quiz"
)

const (
	MinScore = 0
	MaxScore = 10
)

// Normalize rescales raw scores from [MinScore, MaxScore] to [0, 1].
// Values outside the raw range are not clamped and map outside [0, 1].
func Normalize(raw quiz.TraitScores) (quiz.TraitScores, error) {
	normalized := make(quiz.TraitScores, len(raw))
	for trait, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidScoreError{Trait: trait, Value: v}
		}
		normalized[trait] = (v - MinScore) / (MaxScore - MinScore)
	}
	return normalized, nil
}
