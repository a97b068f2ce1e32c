package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/baselearn/internal/course"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Inspect course content",
}

var courseShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List modules with their game terms and tutorial steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCourse(cfg)
		if err != nil {
			return err
		}
		printCourse(cmd.OutOrStdout(), c)
		return nil
	},
}

var courseValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a course YAML file against the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		c, err := course.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d modules, %d terms)\n",
			path, len(c.Modules), c.TotalTerms())
		return nil
	},
}

func init() {
	courseValidateCmd.Flags().String("file", "", "Course YAML file (required)")
	_ = courseValidateCmd.MarkFlagRequired("file")

	courseCmd.AddCommand(courseShowCmd)
	courseCmd.AddCommand(courseValidateCmd)
}

func printCourse(w io.Writer, c course.Course) {
	fmt.Fprintf(w, "%s (format %s)\n\n", c.Title, c.Format)
	fmt.Fprintf(w, "%3s  %-36s  %-8s  %s\n", "#", "Module", "Kind", "Content")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for i, m := range c.Modules {
		fmt.Fprintf(w, "%3d  %-36s  %-8s  %s\n", i+1, truncate(m.Title, 36), m.Kind(), summary(m))

		switch m.Kind() {
		case course.KindGame:
			for _, t := range m.Game.Key.Terms() {
				fmt.Fprintf(w, "%3s  %-36s  %-8s  %s\n", "", "", "term", t.Term)
			}
		case course.KindTutorial:
			for j, s := range m.Tutorial.Steps {
				fmt.Fprintf(w, "%3s  %-36s  %-8s  %d. %s\n", "", "", "step", j+1, s.Title)
			}
			if ex := m.Tutorial.Exercise; ex != nil {
				fmt.Fprintf(w, "%3s  %-36s  %-8s  %s\n", "", "", "exercise", ex.Title)
			}
		}
	}

	fmt.Fprintf(w, "\n%d modules, %d terms\n", len(c.Modules), c.TotalTerms())
}

func summary(m course.Module) string {
	switch m.Kind() {
	case course.KindGame:
		return fmt.Sprintf("%d terms", m.Game.Key.Len())
	case course.KindTutorial:
		return fmt.Sprintf("%d steps", len(m.Tutorial.Steps))
	default:
		return fmt.Sprintf("%d sections", len(m.Sections))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
