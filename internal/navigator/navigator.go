// Package navigator owns the learner's path through a course: which module
// is active, the child sessions each module carries and the global
// completion notice.
//
// A Navigator is a value. Dispatch returns the next Navigator together with
// the Effects the presentation layer should act on, such as timers that
// clear transient highlights.
package navigator

import (
	"slices"
	"time"

	"github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/matching"
	"github.com/abhisek/baselearn/internal/tutorial"
)

const (
	// DefaultIncorrectFlash is how long a wrong pairing stays highlighted.
	DefaultIncorrectFlash = time.Second
	// DefaultMatchPulse is how long a fresh match pulses.
	DefaultMatchPulse = 500 * time.Millisecond
)

type options struct {
	resetOnLeave   bool
	gameVisible    bool
	shuffler       matching.Shuffler
	incorrectFlash time.Duration
	matchPulse     time.Duration
}

// Option configures a Navigator.
type Option func(*options)

// WithResetOnLeave discards a module's sessions whenever the learner
// navigates away from it.
func WithResetOnLeave(on bool) Option {
	return func(o *options) { o.resetOnLeave = on }
}

// WithGameVisible starts matching games shown instead of hidden.
func WithGameVisible(on bool) Option {
	return func(o *options) { o.gameVisible = on }
}

// WithShuffler sets the randomness source used to deal matching games.
// A nil shuffler deals in answer key order.
func WithShuffler(s matching.Shuffler) Option {
	return func(o *options) { o.shuffler = s }
}

// WithIncorrectFlash sets the incorrect highlight duration.
func WithIncorrectFlash(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.incorrectFlash = d
		}
	}
}

// WithMatchPulse sets the match pulse duration.
func WithMatchPulse(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.matchPulse = d
		}
	}
}

// moduleState is the runtime state of one course module.
type moduleState struct {
	def         course.Module
	gameVisible bool
	game        matching.Game
	tutorial    tutorial.Session
}

// Navigator is the root state machine.
type Navigator struct {
	modules    []moduleState
	active     int
	completion bool
	opts       options
}

// New builds a navigator over c with the first module active.
func New(c course.Course, opts ...Option) (Navigator, error) {
	if len(c.Modules) == 0 {
		return Navigator{}, ErrNoModules
	}

	o := options{
		incorrectFlash: DefaultIncorrectFlash,
		matchPulse:     DefaultMatchPulse,
	}
	for _, opt := range opts {
		opt(&o)
	}

	n := Navigator{
		modules: make([]moduleState, len(c.Modules)),
		opts:    o,
	}
	for i, m := range c.Modules {
		st, err := newModuleState(m, o)
		if err != nil {
			return Navigator{}, err
		}
		n.modules[i] = st
	}
	return n, nil
}

func newModuleState(m course.Module, o options) (moduleState, error) {
	st := moduleState{def: m}
	switch m.Kind() {
	case course.KindGame:
		st.game = matching.NewGame(m.Game.Key, o.shuffler)
		st.gameVisible = o.gameVisible
	case course.KindTutorial:
		sess, err := tutorial.New(m.Tutorial.Steps)
		if err != nil {
			return moduleState{}, err
		}
		st.tutorial = sess
	}
	return st, nil
}

// Active returns the index of the active module.
func (n Navigator) Active() int { return n.active }

// Len returns the number of modules.
func (n Navigator) Len() int { return len(n.modules) }

// Completion reports whether the completion notice is raised.
func (n Navigator) Completion() bool { return n.completion }

// Module returns the content of the module at i.
func (n Navigator) Module(i int) (course.Module, bool) {
	if i < 0 || i >= len(n.modules) {
		return course.Module{}, false
	}
	return n.modules[i].def, true
}

// OnChildCompletion raises the completion notice. Dispatch calls it when a
// game or exercise completes.
func (n Navigator) OnChildCompletion() Navigator {
	n.completion = true
	return n
}

// Dispatch applies e and returns the next state. A Navigator not built by
// New has no modules and rejects every event with ErrNoModules.
func (n Navigator) Dispatch(e Event) (Navigator, Effects) {
	if len(n.modules) == 0 {
		return n, Effects{Err: ErrNoModules}
	}
	switch e := e.(type) {
	case SelectModule:
		return n.selectModule(e.Index)
	case ToggleGame:
		return n.toggleGame()
	case SubmitPair:
		return n.submitPair(e.Term, e.Description)
	case ResetGame:
		return n.resetGame()
	case NextStep:
		return n.stepTutorial(tutorial.Session.Next)
	case PreviousStep:
		return n.stepTutorial(tutorial.Session.Previous)
	case ToggleDetail:
		return n.stepTutorial(tutorial.Session.ToggleDetail)
	case SubmitExercise:
		return n.submitExercise(e.Text)
	case DismissCompletion:
		n.completion = false
		return n, Effects{}
	case ExpireFlag:
		return n.expireFlag(e)
	default:
		return n, Effects{Err: ErrUnknownEvent}
	}
}

func (n Navigator) selectModule(i int) (Navigator, Effects) {
	if i < 0 || i >= len(n.modules) {
		return n, Effects{Err: ErrInvalidIndex}
	}
	if i == n.active {
		return n, Effects{}
	}

	n = n.with(n.active, n.leave(n.modules[n.active]))
	n.active = i
	return n, Effects{}
}

// leave runs when the learner navigates away from m. Pending highlights
// never survive; the rest survives unless reset-on-leave is set.
func (n Navigator) leave(m moduleState) moduleState {
	switch m.def.Kind() {
	case course.KindGame:
		if n.opts.resetOnLeave {
			m.game = m.game.Reset(n.opts.shuffler)
			m.gameVisible = n.opts.gameVisible
		} else {
			m.game = m.game.Suspend()
		}
	case course.KindTutorial:
		if n.opts.resetOnLeave {
			m.tutorial = m.tutorial.Reset(true)
		}
	}
	return m
}

func (n Navigator) toggleGame() (Navigator, Effects) {
	m := n.modules[n.active]
	if m.def.Kind() != course.KindGame {
		return n, Effects{Err: ErrNotApplicable}
	}

	if m.gameVisible {
		m.game = m.game.Suspend()
	} else {
		m.game = m.game.Reset(n.opts.shuffler)
	}
	m.gameVisible = !m.gameVisible
	return n.with(n.active, m), Effects{}
}

func (n Navigator) submitPair(term, description string) (Navigator, Effects) {
	m := n.modules[n.active]
	if m.def.Kind() != course.KindGame || !m.gameVisible {
		return n, Effects{Err: ErrNotApplicable}
	}

	game, sub := m.game.SubmitPair(term, description)
	m.game = game
	eff := Effects{Correct: sub.Correct, Err: sub.Err}

	if sub.Completed {
		// A finished game closes and leaves only the completion notice.
		m.game = m.game.Suspend()
		m.gameVisible = false
		eff.Completed = true
		return n.with(n.active, m).OnChildCompletion(), eff
	}

	if sub.Incorrect != nil {
		eff.Timers = append(eff.Timers, Timer{Module: n.active, Flag: FlagIncorrect, Token: *sub.Incorrect, After: n.opts.incorrectFlash})
	}
	if sub.Pulse != nil {
		eff.Timers = append(eff.Timers, Timer{Module: n.active, Flag: FlagPulse, Token: *sub.Pulse, After: n.opts.matchPulse})
	}
	return n.with(n.active, m), eff
}

func (n Navigator) resetGame() (Navigator, Effects) {
	m := n.modules[n.active]
	if m.def.Kind() != course.KindGame || !m.gameVisible {
		return n, Effects{Err: ErrNotApplicable}
	}
	m.game = m.game.Reset(n.opts.shuffler)
	return n.with(n.active, m), Effects{}
}

func (n Navigator) stepTutorial(move func(tutorial.Session) tutorial.Session) (Navigator, Effects) {
	m := n.modules[n.active]
	if m.def.Kind() != course.KindTutorial {
		return n, Effects{Err: ErrNotApplicable}
	}
	m.tutorial = move(m.tutorial)
	return n.with(n.active, m), Effects{}
}

func (n Navigator) submitExercise(text string) (Navigator, Effects) {
	m := n.modules[n.active]
	if m.def.Kind() != course.KindTutorial || m.def.Tutorial.Exercise == nil || !m.tutorial.ExerciseOffered() {
		return n, Effects{Err: ErrNotApplicable}
	}

	fb := m.def.Tutorial.Exercise.Evaluate(text)
	eff := Effects{Correct: fb.Correct, Message: fb.Message}
	if !fb.Correct {
		return n, eff
	}

	sess, first := m.tutorial.CompleteExercise()
	m.tutorial = sess
	n = n.with(n.active, m)
	if first {
		eff.Completed = true
		n = n.OnChildCompletion()
	}
	return n, eff
}

// expireFlag clears a flag of the game that issued the token. Each game
// numbers its tokens independently, so the module index is part of the match.
func (n Navigator) expireFlag(e ExpireFlag) (Navigator, Effects) {
	if e.Module < 0 || e.Module >= len(n.modules) {
		return n, Effects{Err: ErrStaleToken}
	}
	m := n.modules[e.Module]
	if m.def.Kind() != course.KindGame {
		return n, Effects{Err: ErrStaleToken}
	}

	var (
		game matching.Game
		ok   bool
	)
	switch e.Flag {
	case FlagIncorrect:
		game, ok = m.game.ClearIncorrect(e.Token)
	case FlagPulse:
		game, ok = m.game.ClearPulse(e.Token)
	}
	if !ok {
		return n, Effects{Err: ErrStaleToken}
	}
	m.game = game
	return n.with(e.Module, m), Effects{}
}

// with returns n with module i replaced, leaving the receiver's slice alone.
func (n Navigator) with(i int, m moduleState) Navigator {
	n.modules = slices.Clone(n.modules)
	n.modules[i] = m
	return n
}
