package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/lequiz/internal/logger"
	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/report"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find the persona closest to a set of quiz answers",
	Example: `  lequiz match -a "Dunk on everyone" -a "Pizza" -a "Lead the team"
  lequiz match --weights weights.yaml -a ...`,
	Run: func(cmd *cobra.Command, _ []string) {
		answers, _ := cmd.Flags().GetStringArray("answer")
		match(answers)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringArrayP("answer", "a", nil, "a chosen answer, one per question; repeat the flag")
}

func match(answers []string) {
	s := newSession("match")
	format, err := report.ParseFormat(s.config.Output.Format)
	if err != nil {
		s.logger.Fatal("parsing output format", zap.Error(err))
	}

	if len(answers) == 0 {
		s.logger.Fatal("at least one --answer is required")
	}

	corpus := s.loadCorpus()

	if corpus.Roster.Len() == 0 {
		s.logger.Warn("no personas to match against")
		if err := report.Write(os.Stdout, format, report.NewUnknownMatch(answers)); err != nil {
			s.logger.Fatal("printing result", zap.Error(err))
		}
		os.Exit(1)
	}

	weights := s.loadWeights(corpus.Roster)

	if len(answers) != len(corpus.Questions) {
		s.logger.Warn("answer count differs from question count",
			zap.Int("answers", len(answers)),
			zap.Int("questions", len(corpus.Questions)),
		)
	}

	profile, err := matching.Profile(answers, corpus.Ratings, weights)
	if err != nil {
		var missing *matching.MissingAnswerError
		if errors.As(err, &missing) {
			s.logger.Fatal("unknown answer", zap.String("answer", missing.Answer), zap.Error(err))
		}
		s.logger.Fatal("building answer profile", zap.Error(err))
	}

	// A fresh counter: one quiz taker, nothing to penalize yet.
	result, err := matching.Select(profile, corpus.Roster, weights, nil, matching.DefaultDiversityBoost)
	if err != nil {
		s.logger.Fatal("selecting persona", zap.Error(err))
	}

	s.logger.Info("matched persona",
		zap.String(logger.FieldRunID, s.runID),
		zap.String("persona", result.Persona.Name),
		zap.Float64("similarity", result.Similarity),
	)

	if err := report.Write(os.Stdout, format, report.NewMatch(answers, profile, result)); err != nil {
		s.logger.Fatal("printing result", zap.Error(err))
	}
}
