package matching

import (
	"fmt"
	"math"

	"github.com/spigell/lequiz/internal/quiz"
)

// Scorer compares profiles with personas over the trait order of one weight
// vector. The order is resolved once, so a walk builds one Scorer and reuses
// it for every trial.
type Scorer struct {
	weights quiz.Weights
	traits  []string
}

// NewScorer snapshots weights. Later changes to the map do not affect the scorer.
func NewScorer(weights quiz.Weights) *Scorer {
	w := weights.Clone()
	return &Scorer{weights: w, traits: w.Traits()}
}

// Traits returns the sorted trait order every vector is built over.
func (s *Scorer) Traits() []string {
	return s.traits
}

func (s *Scorer) Similarity(profile, ratings quiz.TraitScores) (float64, error) {
	var dot, normProfile, normRatings float64

	for _, trait := range s.traits {
		w := s.weights[trait]

		u, ok := profile[trait]
		if !ok {
			return 0, &MissingTraitError{Trait: trait, Owner: "profile"}
		}
		p, ok := ratings[trait]
		if !ok {
			return 0, &MissingTraitError{Trait: trait, Owner: "persona ratings"}
		}

		wu, wp := u*w, p*w
		dot += wu * wp
		normProfile += wu * wu
		normRatings += wp * wp
	}

	normProfile = math.Sqrt(normProfile)
	normRatings = math.Sqrt(normRatings)
	if normProfile == 0 || normRatings == 0 {
		return 0, nil
	}

	return dot / (normProfile * normRatings), nil
}

func (s *Scorer) Select(profile quiz.TraitScores, roster quiz.Roster, counts map[string]int, boost float64) (Match, error) {
	if len(roster) == 0 {
		return Match{}, ErrEmptyRoster
	}

	best := Match{Index: -1, Adjusted: math.Inf(-1)}
	for i, persona := range roster {
		sim, err := s.Similarity(profile, persona.Ratings)
		if err != nil {
			return Match{}, fmt.Errorf("persona %q: %w", persona.Name, err)
		}

		adjusted := sim - boost*float64(counts[persona.Name])
		if adjusted > best.Adjusted {
			best = Match{Persona: persona, Index: i, Similarity: sim, Adjusted: adjusted}
		}
	}

	// Only reachable when every adjusted score is NaN.
	if best.Index < 0 {
		return Match{}, fmt.Errorf("no persona scored a comparable value")
	}

	return best, nil
}

func (s *Scorer) Average(answers []string, profiles []quiz.TraitScores) (quiz.TraitScores, error) {
	if len(profiles) == 0 {
		return nil, ErrNoAnswers
	}

	avg := make(quiz.TraitScores, len(s.traits))
	for _, trait := range s.traits {
		var sum float64
		for i, p := range profiles {
			v, ok := p[trait]
			if !ok {
				return nil, &MissingTraitError{Trait: trait, Owner: fmt.Sprintf("ratings of answer %q", answers[i])}
			}
			sum += v
		}
		avg[trait] = sum / float64(len(profiles))
	}

	return avg, nil
}

func (s *Scorer) Profile(answers []string, ratings quiz.Ratings) (quiz.TraitScores, error) {
	profiles := make([]quiz.TraitScores, 0, len(answers))
	for _, answer := range answers {
		raw, ok := ratings[answer]
		if !ok {
			return nil, &MissingAnswerError{Answer: answer}
		}

		normalized, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", answer, err)
		}
		profiles = append(profiles, normalized)
	}

	return s.Average(answers, profiles)
}
