package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/optimizer"
	"github.com/spigell/lequiz/internal/quiz"
	"github.com/spigell/lequiz/internal/quiz/quiztest"
	"github.com/spigell/lequiz/internal/simulation"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		expect  Format
		wantErr bool
	}{
		{in: "", expect: FormatTable},
		{in: "table", expect: FormatTable},
		{in: " JSON ", expect: FormatJSON},
		{in: "yaml", expect: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	if FormatForPath("weights.YML") != FormatYAML || FormatForPath("w.yaml") != FormatYAML {
		t.Fatalf("expected yaml for yaml extensions")
	}
	if FormatForPath("weights.json") != FormatJSON || FormatForPath("weights") != FormatJSON {
		t.Fatalf("expected json otherwise")
	}
}

func TestSimulationReport(t *testing.T) {
	corpus := quiztest.Corpus()
	counts := simulation.Counter{"Passer": 3, "Dunker": 1}

	s := NewSimulation("run-1", 9, 4, counts, corpus.Roster)
	if s.Distinct != 2 || s.Score != optimizer.Score(counts) {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if strings.Join(s.Unreached, ",") != "Balanced,Bench" {
		t.Fatalf("expected unreached in roster order, got %v", s.Unreached)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		RunID        string `json:"runId"`
		Steps        int    `json:"steps"`
		Distribution []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"distribution"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, buf.String())
	}
	if decoded.RunID != "run-1" || decoded.Steps != 4 {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
	if len(decoded.Distribution) != 2 || decoded.Distribution[0].Name != "Passer" || decoded.Distribution[0].Count != 3 {
		t.Fatalf("expected Passer first, got %+v", decoded.Distribution)
	}

	buf.Reset()
	if err := Write(&buf, FormatTable, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Simulated 4 quiz completions", "Passer", "Never selected: 2", "Bench"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestMatchReport(t *testing.T) {
	persona := quiz.Persona{Name: "Dunker", Description: "jumps"}
	m := NewMatch([]string{"a", "c"}, quiz.TraitScores{"x": 0.9}, matching.Match{Persona: persona, Similarity: 0.75})

	var buf bytes.Buffer
	if err := Write(&buf, FormatTable, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "You are...\nDunker") || !strings.Contains(out, "Similarity: 0.7500") {
		t.Fatalf("unexpected table output:\n%s", out)
	}

	buf.Reset()
	if err := Write(&buf, FormatYAML, NewUnknownMatch(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Match
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid yaml output: %v", err)
	}
	if decoded.Name != Unknown.Name || decoded.Found {
		t.Fatalf("expected unknown persona, got %+v", decoded)
	}
}

func TestOptimizationReport(t *testing.T) {
	res := &optimizer.Result{
		Weights:    quiz.Weights{"x": 1.25, "y": 0.75},
		Score:      4.5,
		Counts:     simulation.Counter{"Dunker": 2, "Passer": 1},
		Iterations: 10,
		Improvements: []optimizer.Improvement{
			{Iteration: 0, Score: 2, Distinct: 1},
			{Iteration: 3, Score: 4.5, Distinct: 2},
		},
		Elapsed: 1500 * time.Millisecond,
	}

	o := NewOptimization("run-2", 11, res, quiztest.Corpus().Roster)
	if o.TimeMs != 1500 || len(o.Distribution) != 2 {
		t.Fatalf("unexpected summary: %+v", o)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FormatTable, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Best combined score achieved: 4.50", "x", "1.2500", "accepted: 2", "Dunker"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestWriteFileRoundTripsWeights(t *testing.T) {
	saved := WeightsFile{Weights: quiz.Weights{"x": 1.5, "y": 0.25}, Score: 4, Seed: 3}

	for _, name := range []string{"weights.json", "weights.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteFile(path, saved); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			loaded, err := quiz.LoadWeights(quiz.Source{Name: "weights", File: path})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loaded["x"] != 1.5 || loaded["y"] != 0.25 || len(loaded) != 2 {
				t.Fatalf("unexpected weights: %v", loaded)
			}
		})
	}
}
