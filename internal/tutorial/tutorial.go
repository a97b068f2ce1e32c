package tutorial

import (
	"errors"
	"slices"
)

// ErrNoSteps is returned when a tutorial is built without steps.
var ErrNoSteps = errors.New("tutorial has no steps")

// Step is one page of a tutorial.
type Step struct {
	Title  string `yaml:"title" json:"title"`
	Body   string `yaml:"body" json:"body"`
	Code   string `yaml:"code" json:"code"`
	Detail string `yaml:"detail" json:"detail"`
}

// Session tracks the reader's position in a bounded sequence of steps.
// It is a value: transitions return the next Session.
type Session struct {
	steps        []Step
	index        int
	showDetail   bool
	exerciseDone bool
}

// New starts a session at the first step.
func New(steps []Step) (Session, error) {
	if len(steps) == 0 {
		return Session{}, ErrNoSteps
	}
	return Session{steps: slices.Clone(steps)}, nil
}

// Next moves forward one step, stopping at the last.
func (s Session) Next() Session {
	return s.moveTo(min(s.index+1, len(s.steps)-1))
}

// Previous moves back one step, stopping at the first.
func (s Session) Previous() Session {
	return s.moveTo(max(s.index-1, 0))
}

// moveTo changes the index; detail visibility is per step.
func (s Session) moveTo(i int) Session {
	if i == s.index {
		return s
	}
	s.index = i
	s.showDetail = false
	return s
}

// ToggleDetail flips the visibility of the current step's detail text.
func (s Session) ToggleDetail() Session {
	s.showDetail = !s.showDetail
	return s
}

// CompleteExercise marks the final-step exercise done. The boolean is true
// only the first time, when the completion signal should be raised.
func (s Session) CompleteExercise() (Session, bool) {
	if s.exerciseDone {
		return s, false
	}
	s.exerciseDone = true
	return s, true
}

// Reset returns to the first step. Exercise completion is kept unless
// clearExercise is set.
func (s Session) Reset(clearExercise bool) Session {
	s.index = 0
	s.showDetail = false
	if clearExercise {
		s.exerciseDone = false
	}
	return s
}

func (s Session) Index() int { return s.index }
func (s Session) Len() int { return len(s.steps) }
func (s Session) ShowDetail() bool { return s.showDetail }
func (s Session) AtFirst() bool { return s.index == 0 }
func (s Session) AtLast() bool { return s.index == len(s.steps)-1 }
func (s Session) ExerciseDone() bool { return s.exerciseDone }

// Current returns the step at the current index.
func (s Session) Current() Step {
	if len(s.steps) == 0 {
		return Step{}
	}
	return s.steps[s.index]
}

// ExerciseOffered reports whether the embedded exercise should be shown:
// on the final step, until it has been completed.
func (s Session) ExerciseOffered() bool {
	return len(s.steps) > 0 && s.AtLast() && !s.exerciseDone
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Index           int
	Total           int
	Step            Step
	ShowDetail      bool
	AtFirst         bool
	AtLast          bool
	ExerciseOffered bool
	ExerciseDone    bool
}

// Snapshot returns the current view of the session.
func (s Session) Snapshot() Snapshot {
	return Snapshot{
		Index:           s.index,
		Total:           len(s.steps),
		Step:            s.Current(),
		ShowDetail:      s.showDetail,
		AtFirst:         s.AtFirst(),
		AtLast:          s.AtLast(),
		ExerciseOffered: s.ExerciseOffered(),
		ExerciseDone:    s.exerciseDone,
	}
}
