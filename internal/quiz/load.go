package quiz

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Paths holds the locations of the three quiz documents.
type Paths struct {
	Personas  string `mapstructure:"personas"`
	Questions string `mapstructure:"questions"`
	Ratings   string `mapstructure:"ratings"`
}

// LoadCorpus reads and decodes all quiz documents.
func LoadCorpus(paths Paths) (*Corpus, error) {
	roster, err := LoadRoster(Source{Name: "personas", File: paths.Personas})
	if err != nil {
		return nil, err
	}

	questions, err := LoadQuestions(Source{Name: "questions", File: paths.Questions})
	if err != nil {
		return nil, err
	}

	ratings, err := LoadRatings(Source{Name: "ratings", File: paths.Ratings})
	if err != nil {
		return nil, err
	}

	return &Corpus{Roster: roster, Questions: questions, Ratings: ratings}, nil
}

// LoadRoster decodes personas either from a top-level array or from a "results" array.
func LoadRoster(src Source) (Roster, error) {
	items, err := readArray(src, "results")
	if err != nil {
		return nil, err
	}

	roster := make(Roster, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		var p Persona
		if err := mapstructure.Decode(item.Value(), &p); err != nil {
			return nil, fmt.Errorf("%s: persona #%d: %w", src.origin(), i, err)
		}

		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("%s: persona #%d has no name", src.origin(), i)
		}
		if prev, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%s: persona #%d duplicates name %q of persona #%d", src.origin(), i, p.Name, prev)
		}

		// mapstructure turns a null score into 0; read the scores strictly instead.
		rated := item.Get("ratings")
		if !rated.Exists() {
			return nil, fmt.Errorf("%s: persona %q has no ratings", src.origin(), p.Name)
		}
		if p.Ratings, err = readScores(rated); err != nil {
			return nil, fmt.Errorf("%s: persona %q: %w", src.origin(), p.Name, err)
		}
		if len(p.Ratings) == 0 {
			return nil, fmt.Errorf("%s: persona %q has no ratings", src.origin(), p.Name)
		}

		seen[p.Name] = i
		roster = append(roster, p)
	}

	return roster, nil
}

// LoadQuestions decodes questions either from a top-level array or from a "questions" array.
func LoadQuestions(src Source) (Questions, error) {
	items, err := readArray(src, "questions")
	if err != nil {
		return nil, err
	}

	questions := make(Questions, 0, len(items))
	for i, item := range items {
		var q Question
		if err := mapstructure.Decode(item.Value(), &q); err != nil {
			return nil, fmt.Errorf("%s: question #%d: %w", src.origin(), i, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// LoadRatings decodes the rating corpus: an object of answer text to trait scores.
func LoadRatings(src Source) (Ratings, error) {
	data, err := readJSON(src)
	if err != nil {
		return nil, err
	}

	root := gjson.Parse(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: expected an object of answers", src.origin())
	}

	ratings := make(Ratings)
	root.ForEach(func(answer, scores gjson.Result) bool {
		var parsed TraitScores
		parsed, err = readScores(scores)
		if err != nil {
			err = fmt.Errorf("%s: answer %q: %w", src.origin(), answer.String(), err)
			return false
		}
		ratings[answer.String()] = parsed
		return true
	})
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// LoadWeights decodes a trait weight vector. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func LoadWeights(src Source) (Weights, error) {
	raw, err := src.Read()
	if err != nil {
		return nil, err
	}

	var weights Weights
	if isYAML(src.File) {
		var saved struct {
			Weights Weights `yaml:"weights"`
		}
		if err := yaml.Unmarshal([]byte(raw), &saved); err == nil && len(saved.Weights) > 0 {
			weights = saved.Weights
		} else if err := yaml.Unmarshal([]byte(raw), &weights); err != nil {
			return nil, fmt.Errorf("%s: %w", src.origin(), err)
		}
	} else {
		if !gjson.Valid(raw) {
			return nil, fmt.Errorf("%s: invalid json", src.origin())
		}
		// Accept both a bare object and the {"weights": {...}} shape written by the optimizer.
		doc := gjson.Parse(raw)
		if w := doc.Get("weights"); w.IsObject() {
			doc = w
		}
		scores, err := readScores(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.origin(), err)
		}
		weights = Weights(scores)
	}

	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", src.origin(), err)
	}

	return weights, nil
}

func readJSON(src Source) (string, error) {
	data, err := src.Read()
	if err != nil {
		return "", err
	}
	if !gjson.Valid(data) {
		return "", fmt.Errorf("%s: invalid json", src.origin())
	}
	return data, nil
}

func readArray(src Source, key string) ([]gjson.Result, error) {
	data, err := readJSON(src)
	if err != nil {
		return nil, err
	}

	root := gjson.Parse(data)
	if root.IsArray() {
		return root.Array(), nil
	}

	list := root.Get(key)
	if !list.IsArray() {
		return nil, fmt.Errorf("%s: missing %q array", src.origin(), key)
	}

	return list.Array(), nil
}

func readScores(v gjson.Result) (TraitScores, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("expected an object of trait scores")
	}

	scores := make(TraitScores)
	var err error
	v.ForEach(func(trait, score gjson.Result) bool {
		if score.Type != gjson.Number {
			err = fmt.Errorf("trait %q: expected a number, got %s", trait.String(), score.Raw)
			return false
		}
		scores[trait.String()] = score.Float()
		return true
	})
	if err != nil {
		return nil, err
	}

	return scores, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
