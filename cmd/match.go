package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Play a module's matching game in plain text",
	Long: `Play the matching game without the full-screen interface.

Each line pairs a term number with a description number, e.g. "2 3".
Type "r" to deal again or "q" to stop.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().Int("module", 0, "Module number (default: first module with a game)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c, err := loadCourse(cfg)
	if err != nil {
		return err
	}

	num, _ := cmd.Flags().GetInt("module")
	m, err := gameModule(c, num)
	if err != nil {
		return err
	}

	return playMatch(cmd.InOrStdin(), cmd.OutOrStdout(), *m.Game, matching.NewShuffler(cfg.Seed))
}

// gameModule picks module num (1-based), or the first game module when
// num is zero.
func gameModule(c course.Course, num int) (course.Module, error) {
	if num == 0 {
		for _, m := range c.Modules {
			if m.Kind() == course.KindGame {
				return m, nil
			}
		}
		return course.Module{}, errors.New("course has no matching game")
	}
	if num < 1 || num > len(c.Modules) {
		return course.Module{}, fmt.Errorf("module %d out of range 1-%d", num, len(c.Modules))
	}
	m := c.Modules[num-1]
	if m.Kind() != course.KindGame {
		return course.Module{}, fmt.Errorf("module %d (%s) has no matching game", num, m.Title)
	}
	return m, nil
}

// playMatch runs the game until it completes or input ends.
func playMatch(in io.Reader, out io.Writer, gm course.Game, s matching.Shuffler) error {
	game := matching.NewGame(gm.Key, s)
	scanner := bufio.NewScanner(in)

	if gm.Title != "" {
		fmt.Fprintf(out, "── %s ──\n", gm.Title)
	}
	printBoard(out, game.Snapshot())

	for {
		fmt.Fprint(out, "\nPair: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "q":
			fmt.Fprintf(out, "── Score: %d/%d ──\n", game.Score(), game.Total())
			return nil
		case "r":
			game = game.Reset(s)
			printBoard(out, game.Snapshot())
			continue
		}

		snap := game.Snapshot()
		term, desc, err := parsePair(line, snap)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		var sub matching.Submission
		game, sub = game.SubmitPair(term, desc)
		switch {
		case errors.Is(sub.Err, matching.ErrDuplicateSubmission):
			fmt.Fprintf(out, "%s is already matched.\n", term)
		case sub.Correct:
			fmt.Fprintf(out, "\033[32m✓ Correct!\033[0m %d/%d\n", game.Score(), game.Total())
		default:
			fmt.Fprintln(out, "\033[31m✗ Not a match.\033[0m")
		}

		if sub.Completed {
			fmt.Fprintln(out, "\nSuccess! You've completed the module. Great job!")
			return nil
		}
	}

	fmt.Fprintf(out, "── Score: %d/%d ──\n", game.Score(), game.Total())
	return scanner.Err()
}

func printBoard(out io.Writer, snap matching.Snapshot) {
	fmt.Fprintln(out, "\nTerms:")
	for i, t := range snap.Terms {
		mark := " "
		if _, ok := snap.Matches[t.Term]; ok {
			mark = "✓"
		}
		fmt.Fprintf(out, "  %s %d) %s\n", mark, i+1, t.Term)
	}
	fmt.Fprintln(out, "Descriptions:")
	for i, d := range snap.Descriptions {
		mark := " "
		if _, ok := snap.MatchedTerm(d); ok {
			mark = "✓"
		}
		fmt.Fprintf(out, "  %s %d) %s\n", mark, i+1, d)
	}
}

// parsePair reads "<term#> <description#>" against the dealt columns.
func parsePair(line string, snap matching.Snapshot) (string, string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", errors.New(`enter a term number and a description number, e.g. "1 3"`)
	}
	ti, err := strconv.Atoi(fields[0])
	if err != nil || ti < 1 || ti > len(snap.Terms) {
		return "", "", fmt.Errorf("term must be 1-%d", len(snap.Terms))
	}
	di, err := strconv.Atoi(fields[1])
	if err != nil || di < 1 || di > len(snap.Descriptions) {
		return "", "", fmt.Errorf("description must be 1-%d", len(snap.Descriptions))
	}
	return snap.Terms[ti-1].Term, snap.Descriptions[di-1], nil
}
