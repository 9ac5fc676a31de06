package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/lequiz/internal/logger"
	"github.com/spigell/lequiz/internal/optimizer"
	"github.com/spigell/lequiz/internal/report"
	"github.com/spigell/lequiz/internal/simulation"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search trait weights that spread simulated quiz results over many personas",
	Run: func(_ *cobra.Command, _ []string) {
		optimize()
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().IntP("iterations", "i", 0, "number of search iterations (default 1000)")
	optimizeCmd.Flags().IntP("steps", "s", 0, "simulated quiz completions per candidate (default 10)")
	optimizeCmd.Flags().Int("target-diversity", 0, "desired number of distinct personas; reported only, not used by the objective")
	optimizeCmd.Flags().Float64("diversity-boost", 0, "penalty per repeated pick inside a walk (default 0.2)")
	optimizeCmd.Flags().String("output", "", "save the best weights to this file (.json or .yaml)")

	viper.BindPFlag("optimize.iterations", optimizeCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("optimize.steps-per-walk", optimizeCmd.Flags().Lookup("steps"))
	viper.BindPFlag("optimize.target-diversity", optimizeCmd.Flags().Lookup("target-diversity"))
	viper.BindPFlag("optimize.diversity-boost", optimizeCmd.Flags().Lookup("diversity-boost"))
	viper.BindPFlag("optimize.output", optimizeCmd.Flags().Lookup("output"))
}

func optimize() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := newSession("optimize")
	format, err := report.ParseFormat(s.config.Output.Format)
	if err != nil {
		s.logger.Fatal("parsing output format", zap.Error(err))
	}

	rng, seed := simulation.NewRand(s.config.Seed)
	log := logger.WithRunFields(s.logger, "", s.runID, seed)
	log.Info("starting lequiz", zap.String("version", version))

	corpus := s.loadCorpus()

	cfg := optimizer.DefaultConfig()
	cfg.Iterations = s.config.Optimize.Iterations
	cfg.StepsPerWalk = s.config.Optimize.StepsPerWalk
	cfg.TargetDiversity = s.config.Optimize.TargetDiversity
	cfg.DiversityBoost = s.config.Optimize.DiversityBoost
	cfg.ProgressEvery = s.config.Optimize.ProgressEvery

	result, err := optimizer.New(corpus, cfg, rng, log.Named("optimizer")).Optimize(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("search interrupted, reporting the best weights found so far",
			zap.Int("iterations_done", result.Iterations),
		)
	case err != nil:
		log.Fatal("optimizing weights", zap.Error(err))
	}

	summary := report.NewOptimization(s.runID, seed, result, corpus.Roster)

	if path := strings.TrimSpace(s.config.Optimize.Output); path != "" {
		if err := report.WriteFile(path, summary.SavedWeights()); err != nil {
			log.Fatal("saving weights", zap.String("path", path), zap.Error(err))
		}
		log.Info("saved weights", zap.String("path", path))
	}

	if err := report.Write(os.Stdout, format, summary); err != nil {
		log.Fatal("printing result", zap.Error(err))
	}
}
