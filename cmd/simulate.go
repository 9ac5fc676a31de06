package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/lequiz/internal/logger"
	"github.com/spigell/lequiz/internal/report"
	"github.com/spigell/lequiz/internal/simulation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Answer the quiz at random many times and show which personas come out",
	Run: func(_ *cobra.Command, _ []string) {
		simulate()
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntP("steps", "s", 0, "number of simulated quiz completions (default 1000)")
	simulateCmd.Flags().Float64("diversity-boost", 0, "penalty per repeated pick inside the walk (default 0.2)")

	viper.BindPFlag("simulate.steps", simulateCmd.Flags().Lookup("steps"))
	viper.BindPFlag("simulate.diversity-boost", simulateCmd.Flags().Lookup("diversity-boost"))
}

func simulate() {
	s := newSession("simulate")
	format, err := report.ParseFormat(s.config.Output.Format)
	if err != nil {
		s.logger.Fatal("parsing output format", zap.Error(err))
	}

	steps := s.config.Simulate.Steps
	if steps < 0 {
		s.logger.Fatal("steps must not be negative", zap.Int("steps", steps))
	}

	rng, seed := simulation.NewRand(s.config.Seed)
	log := logger.WithRunFields(s.logger, "", s.runID, seed)

	corpus := s.loadCorpus()
	weights := s.loadWeights(corpus.Roster)

	walker := simulation.NewWalker(corpus, rng, log.Named("walker"))
	counts, err := walker.RandomWalk(weights, steps, s.config.Simulate.DiversityBoost)
	if err != nil {
		log.Fatal("simulating quiz completions", zap.Error(err))
	}

	log.Info("simulation finished",
		zap.Int("steps", steps),
		zap.Int("distinct", counts.Distinct()),
	)

	summary := report.NewSimulation(s.runID, seed, steps, counts, corpus.Roster)
	if err := report.Write(os.Stdout, format, summary); err != nil {
		log.Fatal("printing result", zap.Error(err))
	}
}
