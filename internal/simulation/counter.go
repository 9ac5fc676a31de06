package simulation

import (
	"cmp"
	"slices"

	"github.com/spigell/lequiz/internal/quiz"
)

// Counter tallies how many times each persona was selected within one walk.
type Counter map[string]int

// Total returns the number of recorded selections.
func (c Counter) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Distinct returns the number of different personas selected.
func (c Counter) Distinct() int {
	return len(c)
}

// MinMax returns the smallest and largest selection counts, or zeros for an empty counter.
func (c Counter) MinMax() (int, int) {
	if len(c) == 0 {
		return 0, 0
	}

	first := true
	var lo, hi int
	for _, n := range c {
		if first {
			lo, hi = n, n
			first = false
			continue
		}
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return lo, hi
}

// Entry is one persona's share of a walk.
type Entry struct {
	Name  string  `json:"name" yaml:"name"`
	Count int     `json:"count" yaml:"count"`
	Share float64 `json:"share" yaml:"share"`
}

// Sorted returns entries ordered by count descending, ties in roster order.
// Names not in the roster come last in name order.
func (c Counter) Sorted(roster quiz.Roster) []Entry {
	position := make(map[string]int, len(roster))
	for i, p := range roster {
		position[p.Name] = i
	}

	total := c.Total()
	entries := make([]Entry, 0, len(c))
	for name, n := range c {
		e := Entry{Name: name, Count: n}
		if total > 0 {
			e.Share = float64(n) / float64(total)
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		pa, okA := position[a.Name]
		pb, okB := position[b.Name]
		switch {
		case okA && okB:
			return cmp.Compare(pa, pb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return cmp.Compare(a.Name, b.Name)
		}
	})

	return entries
}
