package report

import (
	"fmt"
	"io"

	"github.com/spigell/lequiz/internal/optimizer"
	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/simulation"
)

// Optimization is the printable summary of a weight search.
type Optimization struct {
	RunID           string                  `json:"runId" yaml:"runId"`
	Seed            int64                   `json:"seed" yaml:"seed"`
	Weights         quiz.Weights            `json:"weights" yaml:"weights"`
	Score           float64                 `json:"score" yaml:"score"`
	Iterations      int                     `json:"iterations" yaml:"iterations"`
	TargetDiversity int                     `json:"targetDiversity" yaml:"targetDiversity"`
	Distribution    []simulation.Entry      `json:"distribution" yaml:"distribution"`
	Improvements    []optimizer.Improvement `json:"improvements" yaml:"improvements"`
	TimeMs          int64                   `json:"timeMs" yaml:"timeMs"`
}

// NewOptimization builds the summary of res.
func NewOptimization(runID string, seed int64, res *optimizer.Result, roster quiz.Roster) *Optimization {
	return &Optimization{
		RunID:           runID,
		Seed:            seed,
		Weights:         res.Weights,
		Score:           res.Score,
		Iterations:      res.Iterations,
		TargetDiversity: res.TargetDiversity,
		Distribution:    res.Counts.Sorted(roster),
		Improvements:    res.Improvements,
		TimeMs:          res.Elapsed.Milliseconds(),
	}
}

// WeightsFile is what gets saved for later simulate and match runs.
type WeightsFile struct {
	Weights quiz.Weights `json:"weights" yaml:"weights"`
	Score   float64      `json:"score" yaml:"score"`
	Seed    int64        `json:"seed" yaml:"seed"`
}

func (o *Optimization) SavedWeights() WeightsFile {
	return WeightsFile{Weights: o.Weights, Score: o.Score, Seed: o.Seed}
}

func (o *Optimization) table(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Optimized trait weights for diversity and consistency:\n")
	p.printf("%-24s %10s\n", "Trait", "Weight")
	p.printf("%-24s %10s\n", "------------------------", "----------")
	for _, trait := range o.Weights.Traits() {
		p.printf("%-24s %10.4f\n", trait, o.Weights[trait])
	}
	p.printf("\nBest combined score achieved: %.2f\n", o.Score)
	p.printf("Iterations: %d, accepted: %d, seed: %d, time: %.1fs\n",
		o.Iterations, len(o.Improvements), o.Seed, float64(o.TimeMs)/1000)
	if len(o.Distribution) > 0 {
		p.printf("\nBest walk distribution:\n")
		writeDistribution(p, o.Distribution)
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func writeDistribution(p *printer, entries []simulation.Entry) {
	p.printf("%-32s %8s %8s\n", "Persona", "Count", "Share")
	p.printf("%-32s %8s %8s\n", "--------------------------------", "--------", "--------")
	for _, e := range entries {
		p.printf("%-32s %8d %7.1f%%\n", e.Name, e.Count, e.Share*100)
	}
}
