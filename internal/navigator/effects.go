package navigator

import (
	"errors"
	"time"

	"github.com/abhisek/baselearn/internal/transient"
)

var (
	// ErrNoModules is returned when a navigator is built from an empty course.
	ErrNoModules = errors.New("course has no modules")

	// ErrInvalidIndex marks a module selection outside the module list.
	ErrInvalidIndex = errors.New("module index out of range")

	// ErrNotApplicable marks an event aimed at a session the active module
	// does not currently show.
	ErrNotApplicable = errors.New("event does not apply to the active module")

	// ErrStaleToken marks an ExpireFlag whose flag was already superseded.
	ErrStaleToken = errors.New("transient flag already superseded")

	// ErrUnknownEvent marks an event type the navigator does not handle.
	ErrUnknownEvent = errors.New("unknown event")
)

// FlagKind names a transient flag.
type FlagKind int

const (
	// FlagIncorrect highlights the description of a wrong pairing.
	FlagIncorrect FlagKind = iota
	// FlagPulse highlights a freshly matched pair.
	FlagPulse
)

func (k FlagKind) String() string {
	switch k {
	case FlagIncorrect:
		return "incorrect"
	case FlagPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// Timer asks the presentation layer to deliver ExpireFlag{Module, Flag, Token}
// after the given delay.
type Timer struct {
	Module int
	Flag   FlagKind
	Token  transient.Token
	After  time.Duration
}

// Expire returns the event to deliver when the timer fires.
func (t Timer) Expire() ExpireFlag {
	return ExpireFlag{Module: t.Module, Flag: t.Flag, Token: t.Token}
}

// Effects describes what a transition produced besides the new state.
type Effects struct {
	// Completed is true when this transition raised the completion signal.
	Completed bool

	// Correct is true when a pair or exercise submission was accepted.
	Correct bool

	// Message is the exercise feedback text, if any.
	Message string

	// Timers lists transient flags to clear later.
	Timers []Timer

	// Err classifies a rejected or ignored event. It is never fatal.
	Err error
}
