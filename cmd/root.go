package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/baselearn/internal/config"
	"github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/logger"
	"github.com/abhisek/baselearn/internal/matching"
	"github.com/abhisek/baselearn/internal/navigator"
)

var rootCmd = &cobra.Command{
	Use:   "baselearn",
	Short: "Learn how Base scales Ethereum",
	Long:  "Baselearn is a terminal course on Base, the Ethereum Layer 2, with a matching game and a smart contract tutorial.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("course", "", "Path to a course YAML file (overrides BASELEARN_COURSE)")
	flags.Uint64("seed", 0, "Shuffle seed for the matching game, 0 for random (overrides BASELEARN_SEED)")
	flags.Bool("reset-on-leave", false, "Discard module progress when switching modules (overrides BASELEARN_RESET_ON_LEAVE)")
	flags.String("log-file", "", "Append logs to this file (overrides BASELEARN_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides BASELEARN_LOG_LEVEL)")

	rootCmd.Flags().Bool("skip-intro", false, "Start on the course instead of the intro animation")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(matchCmd)
}

// resolveConfig reads the environment, then applies any flag the user set
// explicitly. Flags win over BASELEARN_* variables.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("course") {
		cfg.CoursePath, _ = flags.GetString("course")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("reset-on-leave") {
		cfg.ResetOnLeave, _ = flags.GetBool("reset-on-leave")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadCourse returns the course at cfg.CoursePath, or the built-in one.
// Load errors already name the file.
func loadCourse(cfg config.Config) (course.Course, error) {
	return course.Load(cfg.CoursePath)
}

// openLogger builds the app logger. The returned closer releases the log
// file, if one was opened.
func openLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logger.Discard(), io.NopCloser(nil), nil
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}

	l := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(strings.ToLower(cfg.LogFormat))),
		logger.WithOutput(f),
		logger.WithAttr(slog.String("app", "baselearn"), slog.String("version", version)),
	)
	return l, f, nil
}

// navigatorOptions maps config onto navigator behaviour.
func navigatorOptions(cfg config.Config) []navigator.Option {
	return []navigator.Option{
		navigator.WithResetOnLeave(cfg.ResetOnLeave),
		navigator.WithGameVisible(cfg.ShowGame),
		navigator.WithShuffler(matching.NewShuffler(cfg.Seed)),
		navigator.WithIncorrectFlash(cfg.IncorrectFlash),
		navigator.WithMatchPulse(cfg.MatchPulse),
	}
}
