package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/lequiz/internal/logger"
	"github.com/spigell/lequiz/internal/matching"
	"github.com/spigell/lequiz/internal/optimizer"
	"github.com/spigell/lequiz/internal/quiz"
)

const (
	app       = "lequiz"
	envPrefix = "LEQUIZ"
)

type Config struct {
	Data        quiz.Paths     `mapstructure:"data"`
	Seed        int64          `mapstructure:"seed"`
	WeightsFile string         `mapstructure:"weights-file"`
	Output      OutputConfig   `mapstructure:"output"`
	Optimize    OptimizeConfig `mapstructure:"optimize"`
	Simulate    SimulateConfig `mapstructure:"simulate"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type OptimizeConfig struct {
	Iterations      int     `mapstructure:"iterations"`
	StepsPerWalk    int     `mapstructure:"steps-per-walk"`
	TargetDiversity int     `mapstructure:"target-diversity"`
	DiversityBoost  float64 `mapstructure:"diversity-boost"`
	ProgressEvery   int     `mapstructure:"progress-every"`
	Output          string  `mapstructure:"output"`
}

type SimulateConfig struct {
	Steps          int     `mapstructure:"steps"`
	DiversityBoost float64 `mapstructure:"diversity-boost"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "lequiz matches quiz answers to LeBron personas and tunes the trait weights behind the match",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is lequiz.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed; 0 picks one from the clock")
	rootCmd.PersistentFlags().String("personas", "", "personas file (default lebrons.json)")
	rootCmd.PersistentFlags().String("questions", "", "questions file (default question-1.json)")
	rootCmd.PersistentFlags().String("ratings", "", "answer ratings file (default rating-questions.json)")
	rootCmd.PersistentFlags().StringP("format", "o", "", "result format: table, json or yaml")
	rootCmd.PersistentFlags().StringP("weights", "w", "", "trait weights file (json or yaml); built-in weights when unset")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("data.personas", rootCmd.PersistentFlags().Lookup("personas"))
	viper.BindPFlag("data.questions", rootCmd.PersistentFlags().Lookup("questions"))
	viper.BindPFlag("data.ratings", rootCmd.PersistentFlags().Lookup("ratings"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("weights-file", rootCmd.PersistentFlags().Lookup("weights"))
}

func setDefaults() {
	defaults := optimizer.DefaultConfig()

	viper.SetDefault("data.personas", "lebrons.json")
	viper.SetDefault("data.questions", "question-1.json")
	viper.SetDefault("data.ratings", "rating-questions.json")
	viper.SetDefault("seed", 0)
	viper.SetDefault("weights-file", "")
	viper.SetDefault("output.format", "table")

	viper.SetDefault("optimize.iterations", defaults.Iterations)
	viper.SetDefault("optimize.steps-per-walk", defaults.StepsPerWalk)
	viper.SetDefault("optimize.target-diversity", defaults.TargetDiversity)
	viper.SetDefault("optimize.diversity-boost", defaults.DiversityBoost)
	viper.SetDefault("optimize.progress-every", defaults.ProgressEvery)
	viper.SetDefault("optimize.output", "")

	viper.SetDefault("simulate.steps", 1000)
	viper.SetDefault("simulate.diversity-boost", matching.DefaultDiversityBoost)
}

func initConfig() {
	// A missing .env is fine, variables may come from the environment itself.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		// An explicitly requested config must be readable.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// session carries what every command needs once flags and config are resolved.
type session struct {
	config *Config
	logger *zap.Logger
	runID  string
}

func newSession(command string) *session {
	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		base.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		base.Fatal("config is required")
	}

	return &session{
		config: config,
		logger: base.With(zap.String(logger.FieldCommand, command)),
		runID:  uuid.NewString(),
	}
}

func (s *session) loadCorpus() *quiz.Corpus {
	corpus, err := quiz.LoadCorpus(s.config.Data)
	if err != nil {
		s.logger.Fatal("loading quiz data",
			zap.Error(err),
			zap.String("hint", "set data.personas, data.questions and data.ratings in the config or pass --personas, --questions, --ratings"),
		)
	}

	s.logger.Info("loaded quiz data",
		zap.Int("personas", corpus.Roster.Len()),
		zap.Int("questions", len(corpus.Questions)),
		zap.Int("rated_answers", len(corpus.Ratings)),
	)

	return corpus
}

// loadWeights returns the configured weights file, or the built-in weights.
// The built-in weights fall back to uniform ones when they do not cover the roster.
func (s *session) loadWeights(roster quiz.Roster) quiz.Weights {
	var weights quiz.Weights
	if path := strings.TrimSpace(s.config.WeightsFile); path != "" {
		loaded, err := quiz.LoadWeights(quiz.Source{Name: "weights", File: path})
		if err != nil {
			s.logger.Fatal("loading weights", zap.Error(err))
		}
		weights = loaded
		s.logger.Info("using weights from file", zap.String("path", path))
	} else {
		weights = quiz.DefaultWeights()
		if err := weights.CoversRoster(roster); err != nil {
			s.logger.Warn("built-in weights do not fit the roster, using uniform weights", zap.Error(err))
			weights = quiz.UniformWeights(roster.Traits())
		}
	}

	if err := weights.CoversRoster(roster); err != nil {
		s.logger.Fatal("weights do not match the personas", zap.Error(err))
	}

	return weights
}
