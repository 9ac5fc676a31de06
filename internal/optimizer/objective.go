package optimizer

import "github.com/spigell/lequiz/internal/simulation"

// DiversityFactor is how much one more distinct persona is worth relative to a
// perfectly even distribution.
const DiversityFactor = 2

// Score rates a walk: DiversityFactor per distinct persona plus the ratio of the
// rarest to the most frequent pick. The ratio is 0 when fewer than two personas
// were picked.
func Score(counts simulation.Counter) float64 {
	return DiversityFactor*float64(counts.Distinct()) + Consistency(counts)
}

// Consistency returns min(count)/max(count) over selected personas, or 0 when
// fewer than two personas were selected.
func Consistency(counts simulation.Counter) float64 {
	if counts.Distinct() <= 1 {
		return 0
	}
	lo, hi := counts.MinMax()
	return float64(lo) / float64(hi)
}
