package simulation

import (
	"testing"

	"github.com/spigell/lequiz/internal/quiz"
)

func TestCounterStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counts   Counter
		total    int
		distinct int
		lo, hi   int
	}{
		{name: "empty", counts: Counter{}, total: 0, distinct: 0, lo: 0, hi: 0},
		{name: "single", counts: Counter{"A": 4}, total: 4, distinct: 1, lo: 4, hi: 4},
		{name: "several", counts: Counter{"A": 4, "B": 1, "C": 7}, total: 12, distinct: 3, lo: 1, hi: 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.counts.Total(); got != tt.total {
				t.Fatalf("expected total %d, got %d", tt.total, got)
			}
			if got := tt.counts.Distinct(); got != tt.distinct {
				t.Fatalf("expected distinct %d, got %d", tt.distinct, got)
			}
			lo, hi := tt.counts.MinMax()
			if lo != tt.lo || hi != tt.hi {
				t.Fatalf("expected min/max %d/%d, got %d/%d", tt.lo, tt.hi, lo, hi)
			}
		})
	}
}

func TestCounterSorted(t *testing.T) {
	roster := quiz.Roster{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	counts := Counter{"C": 2, "B": 2, "A": 1, "Ghost": 2}

	entries := counts.Sorted(roster)

	want := []string{"B", "C", "Ghost", "A"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, name, entries[i].Name, entries)
		}
	}
	if entries[3].Share != 1.0/7 {
		t.Fatalf("expected share 1/7, got %v", entries[3].Share)
	}
}
