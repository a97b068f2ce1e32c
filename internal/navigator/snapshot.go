package navigator

import (
	"github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/matching"
	"github.com/abhisek/baselearn/internal/tutorial"
)

// ModuleSnapshot is a read-only view of one module. Game is set only for
// game modules and Tutorial only for tutorial modules.
type ModuleSnapshot struct {
	Index       int
	Title       string
	Kind        course.Kind
	Active      bool
	GameVisible bool
	Game        matching.Snapshot
	Tutorial    tutorial.Snapshot
}

// Snapshot is a read-only view of the whole navigator.
type Snapshot struct {
	Active     int
	Completion bool
	Modules    []ModuleSnapshot
}

// Current returns the active module's view, or the zero value when there
// are no modules.
func (s Snapshot) Current() ModuleSnapshot {
	if s.Active < 0 || s.Active >= len(s.Modules) {
		return ModuleSnapshot{}
	}
	return s.Modules[s.Active]
}

// Snapshot returns the current view of n.
func (n Navigator) Snapshot() Snapshot {
	s := Snapshot{
		Active:     n.active,
		Completion: n.completion,
		Modules:    make([]ModuleSnapshot, len(n.modules)),
	}
	for i, m := range n.modules {
		ms := ModuleSnapshot{
			Index:  i,
			Title:  m.def.Title,
			Kind:   m.def.Kind(),
			Active: i == n.active,
		}
		switch ms.Kind {
		case course.KindGame:
			ms.GameVisible = m.gameVisible
			ms.Game = m.game.Snapshot()
		case course.KindTutorial:
			ms.Tutorial = m.tutorial.Snapshot()
		}
		s.Modules[i] = ms
	}
	return s
}
