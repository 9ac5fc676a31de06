package quiz

import (
	"slices"
)

// TraitScores maps a trait name to its score. Raw ratings use the [0,10] scale,
// normalized profiles the [0,1] scale.
type TraitScores map[string]float64

// Traits returns the trait names in sorted order.
func (s TraitScores) Traits() []string {
	var keys []string
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type Persona struct {
	Name        string      `mapstructure:"name" json:"name" yaml:"name"`
	Ratings     TraitScores `mapstructure:"ratings" json:"ratings" yaml:"ratings"`
	Image       string      `mapstructure:"image" json:"image,omitempty" yaml:"image,omitempty"`
	Description string      `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
}

// Roster is the ordered list of personas. Order matters: it breaks ties on selection.
type Roster []Persona

func (r Roster) Len() int {
	return len(r)
}

// Traits returns the sorted trait names of the first persona. Every persona is
// expected to be rated on the same traits.
func (r Roster) Traits() []string {
	if len(r) == 0 {
		return nil
	}
	return r[0].Ratings.Traits()
}

// Names returns persona names in roster order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, p := range r {
		names = append(names, p.Name)
	}
	return names
}

type Question struct {
	Text    string   `mapstructure:"question" json:"question" yaml:"question"`
	Image   string   `mapstructure:"image" json:"image,omitempty" yaml:"image,omitempty"`
	Answers []string `mapstructure:"answers" json:"answers" yaml:"answers"`
}

type Questions []Question

// Ratings is the rating corpus: raw trait scores keyed by answer text.
type Ratings map[string]TraitScores

// Corpus bundles the read-only inputs of one run.
type Corpus struct {
	Roster    Roster
	Questions Questions
	Ratings   Ratings
}
