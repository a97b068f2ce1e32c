package matching

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/baselearn/internal/transient"
)

// Status is the lifecycle state of a game session.
type Status int

const (
	StatusInProgress Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Game is one activation of the matching game. It is a value: every
// transition returns the next Game and leaves the receiver untouched.
type Game struct {
	id           string
	key          AnswerKey
	terms        []Term
	descriptions []string
	matches      map[string]string
	status       Status
	signaled     bool

	// incorrect holds the last wrongly targeted description.
	incorrect transient.Flag[string]
	// pulse holds the term that was just matched.
	pulse transient.Flag[string]
}

// Submission describes the outcome of SubmitPair.
type Submission struct {
	// Correct is true when the pair was validated and recorded.
	Correct bool

	// Err is ErrDuplicateSubmission when the submission was ignored, or
	// ErrUnknownTerm when the term is not part of the key.
	Err error

	// Completed is true only for the submission that completed the game.
	Completed bool

	// Incorrect is the token for the incorrect flag set by this submission.
	Incorrect *transient.Token

	// Pulse is the token for the match pulse set by this submission.
	Pulse *transient.Token
}

// NewGame deals a fresh game from key using s. A nil s keeps key order.
func NewGame(key AnswerKey, s Shuffler) Game {
	terms, descriptions := deal(key, s)
	return Game{
		id:           uuid.New().String(),
		key:          key,
		terms:        terms,
		descriptions: descriptions,
		matches:      make(map[string]string, key.Len()),
		status:       StatusInProgress,
	}
}

// SubmitPair validates a term/description pairing and applies it.
func (g Game) SubmitPair(term, description string) (Game, Submission) {
	if _, done := g.matches[term]; done {
		return g, Submission{Err: ErrDuplicateSubmission}
	}

	if !Validate(g.key, term, description) {
		var sub Submission
		if _, known := g.key.Lookup(term); !known {
			sub.Err = ErrUnknownTerm
		}
		var tok transient.Token
		g.incorrect, tok = g.incorrect.Set(description)
		sub.Incorrect = &tok
		return g, sub
	}

	g.matches = maps.Clone(g.matches)
	g.matches[term] = description
	g.incorrect = g.incorrect.Drop()

	var tok transient.Token
	g.pulse, tok = g.pulse.Set(term)
	sub := Submission{Correct: true, Pulse: &tok}

	// Completion is decided on the post-update count.
	if len(g.matches) == g.key.Len() && !g.signaled {
		g.status = StatusCompleted
		g.signaled = true
		sub.Completed = true
	}
	return g, sub
}

// Reset deals a new game from the same key. Tokens issued before the reset
// can no longer clear anything.
func (g Game) Reset(s Shuffler) Game {
	next := NewGame(g.key, s)
	next.incorrect = g.incorrect.Invalidate()
	next.pulse = g.pulse.Invalidate()
	return next
}

// Suspend clears both transient flags and invalidates pending tokens while
// keeping matches and score.
func (g Game) Suspend() Game {
	g.incorrect = g.incorrect.Invalidate()
	g.pulse = g.pulse.Invalidate()
	return g
}

// ClearIncorrect clears the incorrect flag if tok is still current.
func (g Game) ClearIncorrect(tok transient.Token) (Game, bool) {
	var ok bool
	g.incorrect, ok = g.incorrect.Clear(tok)
	return g, ok
}

// ClearPulse clears the match pulse if tok is still current.
func (g Game) ClearPulse(tok transient.Token) (Game, bool) {
	var ok bool
	g.pulse, ok = g.pulse.Clear(tok)
	return g, ok
}

// ID returns the session identifier assigned when the game was dealt.
func (g Game) ID() string { return g.id }

// Status returns the lifecycle state.
func (g Game) Status() Status { return g.status }

// Score returns the number of confirmed matches.
func (g Game) Score() int { return len(g.matches) }

// Total returns the number of terms to match.
func (g Game) Total() int { return g.key.Len() }

// Matched reports whether term has been matched.
func (g Game) Matched(term string) bool {
	_, ok := g.matches[term]
	return ok
}

// LastIncorrect returns the description currently flagged as incorrect.
func (g Game) LastIncorrect() (string, bool) {
	return g.incorrect.Get()
}

// Snapshot is a read-only copy of a game's state for rendering.
type Snapshot struct {
	ID            string
	Terms         []Term
	Descriptions  []string
	Matches       map[string]string
	Score         int
	Total         int
	LastIncorrect string
	HasIncorrect  bool
	Pulse         string
	HasPulse      bool
	Status        Status
}

// Snapshot returns a copy of the game state.
func (g Game) Snapshot() Snapshot {
	incorrect, hasIncorrect := g.incorrect.Get()
	pulse, hasPulse := g.pulse.Get()
	return Snapshot{
		ID:            g.id,
		Terms:         slices.Clone(g.terms),
		Descriptions:  slices.Clone(g.descriptions),
		Matches:       maps.Clone(g.matches),
		Score:         len(g.matches),
		Total:         g.key.Len(),
		LastIncorrect: incorrect,
		HasIncorrect:  hasIncorrect,
		Pulse:         pulse,
		HasPulse:      hasPulse,
		Status:        g.status,
	}
}

// Completed reports whether every term is matched.
func (s Snapshot) Completed() bool {
	return s.Status == StatusCompleted
}

// MatchedTerm returns the term matched to description, if any.
func (s Snapshot) MatchedTerm(description string) (string, bool) {
	for term, d := range s.Matches {
		if d == description {
			return term, true
		}
	}
	return "", false
}
