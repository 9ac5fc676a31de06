package report

import (
	"io"

	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/quiz"
)

// Unknown is shown when no persona could be matched.
var Unknown = quiz.Persona{
	Name:        "Unknown LeBron",
	Image:       "images/placeholder.jpg",
	Description: "An enigma wrapped in mystery. We couldn't find your LeBron, but you're still a GOAT in our eyes.",
}

// Match is the printable result of matching one answer set.
type Match struct {
	Name        string           `json:"name" yaml:"name"`
	Image       string           `json:"image,omitempty" yaml:"image,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Similarity  float64          `json:"similarity" yaml:"similarity"`
	Found       bool             `json:"found" yaml:"found"`
	Answers     []string         `json:"answers" yaml:"answers"`
	Profile     quiz.TraitScores `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// NewMatch describes m. Use NewUnknownMatch when selection failed.
func NewMatch(answers []string, profile quiz.TraitScores, m matching.Match) *Match {
	return &Match{
		Name:        m.Persona.Name,
		Image:       m.Persona.Image,
		Description: m.Persona.Description,
		Similarity:  m.Similarity,
		Found:       true,
		Answers:     answers,
		Profile:     profile,
	}
}

func NewUnknownMatch(answers []string) *Match {
	return &Match{
		Name:        Unknown.Name,
		Image:       Unknown.Image,
		Description: Unknown.Description,
		Answers:     answers,
	}
}

func (m *Match) table(w io.Writer) error {
	p := &printer{w: w}
	p.printf("You are...\n%s\n", m.Name)
	if m.Description != "" {
		p.printf("\n%s\n", m.Description)
	}
	if m.Found {
		p.printf("\nSimilarity: %.4f\n", m.Similarity)
	}
	return p.err
}
