// Package quiztest provides small in-memory quiz corpora for tests.
package quiztest

import "github.com/spigell/lequiz/internal/quiz"

// Corpus returns four personas rated on two traits and two questions with two
// answers each.
func Corpus() *quiz.Corpus {
	return &quiz.Corpus{
		Roster: quiz.Roster{
			{Name: "Dunker", Ratings: quiz.TraitScores{"x": 10, "y": 0}},
			{Name: "Passer", Ratings: quiz.TraitScores{"x": 0, "y": 10}},
			{Name: "Balanced", Ratings: quiz.TraitScores{"x": 7, "y": 7}},
			{Name: "Bench", Ratings: quiz.TraitScores{"x": 1, "y": 2}},
		},
		Questions: quiz.Questions{
			{Text: "q1", Answers: []string{"a", "b"}},
			{Text: "q2", Answers: []string{"c", "d"}},
		},
		Ratings: quiz.Ratings{
			"a": {"x": 10, "y": 0},
			"b": {"x": 0, "y": 10},
			"c": {"x": 8, "y": 2},
			"d": {"x": 2, "y": 8},
		},
	}
}

// TwoPersonas returns personas A {x:10} and B {x:0} and one question whose
// answers rate x as 10 and 0.
func TwoPersonas() *quiz.Corpus {
	return &quiz.Corpus{
		Roster: quiz.Roster{
			{Name: "A", Ratings: quiz.TraitScores{"x": 10}},
			{Name: "B", Ratings: quiz.TraitScores{"x": 0}},
		},
		Questions: quiz.Questions{
			{Text: "only", Answers: []string{"high", "low"}},
		},
		Ratings: quiz.Ratings{
			"high": {"x": 10},
			"low":  {"x": 0},
		},
	}
}
