package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/baselearn/internal/app"
)

// runApp resolves config, loads the course and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	c, err := loadCourse(cfg)
	if err != nil {
		return err
	}

	log, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	log.Info("starting",
		slog.String("course", c.Title),
		slog.Int("modules", len(c.Modules)),
		slog.Bool("reset_on_leave", cfg.ResetOnLeave))

	return app.Run(app.Options{
		Course:      c,
		Navigator:   navigatorOptions(cfg),
		Logger:      log,
		SkipWelcome: skipIntro,
	})
}
