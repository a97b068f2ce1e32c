package course

import (
	"github.com/abhisek/baselearn/internal/exercise"
	"github.com/abhisek/baselearn/internal/matching"
	"github.com/abhisek/baselearn/internal/tutorial"
)

// Kind identifies which interactive session, if any, a module embeds.
type Kind int

const (
	KindReading Kind = iota
	KindGame
	KindTutorial
)

func (k Kind) String() string {
	switch k {
	case KindReading:
		return "reading"
	case KindGame:
		return "game"
	case KindTutorial:
		return "tutorial"
	default:
		return "unknown"
	}
}

// Course is the fixed content of the application.
type Course struct {
	Format  string
	Title   string
	Modules []Module
}

// Module is one top-level learning module.
type Module struct {
	Title    string
	Heading  string
	Sections []Section
	Diagram  *Diagram
	Game     *Game
	Tutorial *Tutorial
}

// Kind reports the embedded session type.
func (m Module) Kind() Kind {
	switch {
	case m.Game != nil:
		return KindGame
	case m.Tutorial != nil:
		return KindTutorial
	default:
		return KindReading
	}
}

// Section is a block of prose.
type Section struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Bullets    []string `yaml:"bullets"`
}

// Diagram labels the two-layer picture: Upper sits on top of Lower, Down
// and Up caption the arrows between them.
type Diagram struct {
	Upper string `yaml:"upper"`
	Lower string `yaml:"lower"`
	Down  string `yaml:"down"`
	Up    string `yaml:"up"`
}

// Game is the matching game configuration.
type Game struct {
	Title        string
	Instructions string
	Key          matching.AnswerKey
}

// Tutorial is the step sequence and its optional final exercise.
type Tutorial struct {
	Steps    []tutorial.Step
	Exercise *exercise.Exercise
}

// TotalTerms returns the number of matching-game terms across all modules.
func (c Course) TotalTerms() int {
	n := 0
	for _, m := range c.Modules {
		if m.Game != nil {
			n += m.Game.Key.Len()
		}
	}
	return n
}
