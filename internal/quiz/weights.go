package quiz

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Weights is the per-trait multiplier applied before comparing profiles.
// Its sorted key order defines the vector layout used by the similarity scorer.
type Weights map[string]float64

// DefaultWeights returns the weights the quiz shipped with.
func DefaultWeights() Weights {
	return Weights{
		"confidence":      0.876850850367134,
		"humor":           1.3590308797724668,
		"creativity":      0.9581770002100758,
		"social":          0.645137516459086,
		"intensity":       1.0664124278538842,
		"honesty":         0.9459812098220566,
		"strategy":        1.06531586911321,
		"boldness":        1.4466557042696735,
		"competitiveness": 1.1858407552064394,
		"relatability":    0.7701276891331693,
	}
}

// UniformWeights returns weight 1 for every given trait.
func UniformWeights(traits []string) Weights {
	w := make(Weights, len(traits))
	for _, t := range traits {
		w[t] = 1
	}
	return w
}

func (w Weights) Traits() []string {
	var keys []string
	for k := range w {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (w Weights) Clone() Weights {
	return maps.Clone(w)
}

// Scale returns a copy with every weight multiplied by k.
func (w Weights) Scale(k float64) Weights {
	scaled := make(Weights, len(w))
	for t, v := range w {
		scaled[t] = v * k
	}
	return scaled
}

// Validate checks that the vector is non-empty and every weight is a positive finite number.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("weights are empty")
	}
	for _, t := range w.Traits() {
		v := w[t]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %q is not a finite number", t)
		}
		if v <= 0 {
			return fmt.Errorf("weight %q must be positive, got %g", t, v)
		}
	}
	return nil
}

// CoversRoster reports the first roster trait that has no weight.
func (w Weights) CoversRoster(r Roster) error {
	for _, t := range r.Traits() {
		if _, ok := w[t]; !ok {
			return fmt.Errorf("weights have no entry for trait %q", t)
		}
	}
	return nil
}
