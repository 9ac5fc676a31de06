package optimizer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/simulation"
	"go.uber.org/zap"
)

// Config holds the search parameters.
type Config struct {
	Iterations   int
	StepsPerWalk int
	// TargetDiversity is kept for interface compatibility and reported back.
	// The objective does not use it.
	TargetDiversity int
	DiversityBoost  float64

	// InitialMin and InitialMax bound the random starting weights.
	InitialMin float64
	InitialMax float64
	// Perturbation is the half-width of the uniform noise added per iteration.
	Perturbation float64
	// Floor is the lowest weight a perturbation may produce.
	Floor float64

	// ProgressEvery controls how often progress is logged. Zero disables it.
	ProgressEvery int
}

// DefaultConfig returns the parameters the weights were originally tuned with.
func DefaultConfig() Config {
	return Config{
		Iterations:      1000,
		StepsPerWalk:    10,
		TargetDiversity: 10,
		DiversityBoost:  matching.DefaultDiversityBoost,
		InitialMin:      0.5,
		InitialMax:      1.5,
		Perturbation:    0.1,
		Floor:           0.1,
		ProgressEvery:   100,
	}
}

// Validate checks the parameters for values the search cannot work with.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.StepsPerWalk < 0 {
		return fmt.Errorf("steps per walk must not be negative, got %d", c.StepsPerWalk)
	}
	if c.DiversityBoost < 0 {
		return fmt.Errorf("diversity boost must not be negative, got %g", c.DiversityBoost)
	}
	if c.InitialMin <= 0 || c.InitialMax < c.InitialMin {
		return fmt.Errorf("initial weight range [%g, %g] is invalid", c.InitialMin, c.InitialMax)
	}
	if c.Perturbation < 0 {
		return fmt.Errorf("perturbation must not be negative, got %g", c.Perturbation)
	}
	if c.Floor <= 0 {
		return fmt.Errorf("weight floor must be positive, got %g", c.Floor)
	}
	return nil
}

// Improvement records an accepted candidate.
type Improvement struct {
	Iteration int     `json:"iteration" yaml:"iteration"`
	Score     float64 `json:"score" yaml:"score"`
	Distinct  int     `json:"distinct" yaml:"distinct"`
}

// Result is the outcome of a search.
type Result struct {
	Weights quiz.Weights `json:"weights" yaml:"weights"`
	Score   float64      `json:"score" yaml:"score"`
	// Counts is the walk that produced Score. Empty when nothing was accepted.
	Counts          simulation.Counter `json:"counts" yaml:"counts"`
	Iterations      int                `json:"iterations" yaml:"iterations"`
	TargetDiversity int                `json:"targetDiversity" yaml:"targetDiversity"`
	Improvements    []Improvement      `json:"improvements" yaml:"improvements"`
	Elapsed         time.Duration      `json:"elapsedNs" yaml:"elapsed"`
}

// Optimizer hill-climbs trait weights towards walks that pick many different
// personas evenly.
type Optimizer struct {
	corpus *quiz.Corpus
	cfg    Config
	rng    *rand.Rand
	walker *simulation.Walker
	logger *zap.Logger
}

// New creates an optimizer. rng is shared with the walker so a single seed
// reproduces the whole search.
func New(corpus *quiz.Corpus, cfg Config, rng *rand.Rand, logger *zap.Logger) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{
		corpus: corpus,
		cfg:    cfg,
		rng:    rng,
		walker: simulation.NewWalker(corpus, rng, logger.Named("walker")),
		logger: logger,
	}
}

// Optimize runs the search. On context cancellation it returns the best result
// found so far together with the context error.
func (o *Optimizer) Optimize(ctx context.Context) (*Result, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	if o.corpus == nil || o.corpus.Roster.Len() == 0 {
		return nil, matching.ErrEmptyRoster
	}

	started := time.Now()
	traits := o.corpus.Roster.Traits()

	best := o.initialWeights(traits)
	result := &Result{
		Weights:         best,
		Counts:          simulation.Counter{},
		TargetDiversity: o.cfg.TargetDiversity,
	}

	o.logger.Info("starting weight search",
		zap.Int("iterations", o.cfg.Iterations),
		zap.Int("steps_per_walk", o.cfg.StepsPerWalk),
		zap.Float64("diversity_boost", o.cfg.DiversityBoost),
		zap.Int("personas", o.corpus.Roster.Len()),
		zap.Int("questions", len(o.corpus.Questions)),
		zap.Strings("traits", traits),
	)

	for i := 0; i < o.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			result.Elapsed = time.Since(started)
			o.logger.Warn("weight search interrupted",
				zap.Int("iteration", i),
				zap.Float64("best_score", result.Score),
				zap.Error(err),
			)
			return result, err
		}

		trial := o.perturb(result.Weights, traits)

		counts, err := o.walker.RandomWalk(trial, o.cfg.StepsPerWalk, o.cfg.DiversityBoost)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		result.Iterations = i + 1
		score := Score(counts)
		if score > result.Score {
			result.Weights = trial
			result.Score = score
			result.Counts = counts
			result.Improvements = append(result.Improvements, Improvement{
				Iteration: i,
				Score:     score,
				Distinct:  counts.Distinct(),
			})

			o.logger.Debug("accepted weights",
				zap.Int("iteration", i),
				zap.Float64("score", score),
				zap.Int("distinct", counts.Distinct()),
				zap.Float64("consistency", Consistency(counts)),
			)
		}

		if o.cfg.ProgressEvery > 0 && (i+1)%o.cfg.ProgressEvery == 0 {
			o.logger.Debug("search progress",
				zap.Int("iteration", i+1),
				zap.Float64("best_score", result.Score),
				zap.Int("accepted", len(result.Improvements)),
			)
		}
	}

	result.Elapsed = time.Since(started)

	o.logger.Info("weight search finished",
		zap.Float64("best_score", result.Score),
		zap.Int("accepted", len(result.Improvements)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

func (o *Optimizer) initialWeights(traits []string) quiz.Weights {
	w := make(quiz.Weights, len(traits))
	span := o.cfg.InitialMax - o.cfg.InitialMin
	for _, t := range traits {
		w[t] = o.cfg.InitialMin + o.rng.Float64()*span
	}
	return w
}

func (o *Optimizer) perturb(base quiz.Weights, traits []string) quiz.Weights {
	w := make(quiz.Weights, len(traits))
	for _, t := range traits {
		noise := (o.rng.Float64()*2 - 1) * o.cfg.Perturbation
		w[t] = max(o.cfg.Floor, base[t]+noise)
	}
	return w
}
