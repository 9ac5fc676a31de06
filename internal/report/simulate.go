package report

import (
	"io"

	"github.com/spigell/lequiz/internal/optimizer"
	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/simulation"
)

// Simulation is the printable summary of one random walk batch.
type Simulation struct {
	RunID        string             `json:"runId" yaml:"runId"`
	Seed         int64              `json:"seed" yaml:"seed"`
	Steps        int                `json:"steps" yaml:"steps"`
	Distinct     int                `json:"distinct" yaml:"distinct"`
	Consistency  float64            `json:"consistency" yaml:"consistency"`
	Score        float64            `json:"score" yaml:"score"`
	Unreached    []string           `json:"unreached" yaml:"unreached"`
	Distribution []simulation.Entry `json:"distribution" yaml:"distribution"`
}

// NewSimulation summarizes counts against the roster.
func NewSimulation(runID string, seed int64, steps int, counts simulation.Counter, roster quiz.Roster) *Simulation {
	unreached := make([]string, 0)
	for _, name := range roster.Names() {
		if _, ok := counts[name]; !ok {
			unreached = append(unreached, name)
		}
	}

	return &Simulation{
		RunID:        runID,
		Seed:         seed,
		Steps:        steps,
		Distinct:     counts.Distinct(),
		Consistency:  optimizer.Consistency(counts),
		Score:        optimizer.Score(counts),
		Unreached:    unreached,
		Distribution: counts.Sorted(roster),
	}
}

func (s *Simulation) table(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Simulated %d quiz completions (seed %d)\n\n", s.Steps, s.Seed)
	writeDistribution(p, s.Distribution)
	p.printf("\nDistinct personas: %d, consistency: %.2f, score: %.2f\n", s.Distinct, s.Consistency, s.Score)
	if len(s.Unreached) > 0 {
		p.printf("Never selected: %d\n", len(s.Unreached))
		for _, name := range s.Unreached {
			p.printf("  %s\n", name)
		}
	}
	return p.err
}
