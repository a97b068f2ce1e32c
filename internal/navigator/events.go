package navigator

import "github.com/abhisek/baselearn/internal/transient"

// Event is a user intent delivered by the presentation layer.
type Event interface {
	isEvent()
}

// SelectModule makes the module at Index active.
type SelectModule struct{ Index int }

// ToggleGame shows the active module's matching game with a fresh deal,
// or hides and discards it.
type ToggleGame struct{}

// SubmitPair drops Term onto Description in the active matching game.
type SubmitPair struct {
	Term        string
	Description string
}

// ResetGame deals the active matching game again.
type ResetGame struct{}

// NextStep advances the active tutorial.
type NextStep struct{}

// PreviousStep moves the active tutorial back.
type PreviousStep struct{}

// ToggleDetail shows or hides the current tutorial step's detail text.
type ToggleDetail struct{}

// SubmitExercise checks Text against the active tutorial's exercise.
type SubmitExercise struct{ Text string }

// DismissCompletion closes the completion notice.
type DismissCompletion struct{}

// ExpireFlag is delivered when a transient flag's display time is over.
// Module is the index of the module whose game issued Token.
type ExpireFlag struct {
	Module int
	Flag   FlagKind
	Token  transient.Token
}

func (SelectModule) isEvent()      {}
func (ToggleGame) isEvent()        {}
func (SubmitPair) isEvent()        {}
func (ResetGame) isEvent()         {}
func (NextStep) isEvent()          {}
func (PreviousStep) isEvent()      {}
func (ToggleDetail) isEvent()      {}
func (SubmitExercise) isEvent()    {}
func (DismissCompletion) isEvent() {}
func (ExpireFlag) isEvent()        {}
