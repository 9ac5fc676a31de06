package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRoster is returned when there is no persona to select from.
	ErrEmptyRoster = errors.New("persona roster is empty")
	// ErrNoAnswers is returned when a profile is averaged over zero answers.
	ErrNoAnswers = errors.New("no answers to average")
	// ErrDegenerateVector describes a zero-norm weighted vector. Similarity treats
	// it as a score of 0 and never returns it; it is exported for callers that
	// want to report the condition themselves.
	ErrDegenerateVector = errors.New("weighted vector has zero norm")
)

// MissingTraitError reports a weighted trait absent from a profile or persona.
type MissingTraitError struct {
	Trait string
	Owner string
}

func (e *MissingTraitError) Error() string {
	return fmt.Sprintf("trait %q is missing from %s", e.Trait, e.Owner)
}

// InvalidScoreError reports a trait score that cannot be rescaled.
type InvalidScoreError struct {
	Trait string
	Value float64
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("trait %q has invalid score %v", e.Trait, e.Value)
}
