package matching

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyKey is returned when an answer key has no terms.
	ErrEmptyKey = errors.New("answer key has no terms")

	// ErrUnknownTerm marks a submission whose term is not in the answer key.
	ErrUnknownTerm = errors.New("term not in answer key")

	// ErrDuplicateSubmission marks a submission for a term that is already matched.
	ErrDuplicateSubmission = errors.New("term already matched")
)

// Term is one vocabulary entry of the matching game.
type Term struct {
	Term        string `yaml:"term" json:"term"`
	Description string `yaml:"description" json:"description"`
}

// AnswerKey is the fixed, ordered source of truth for correct pairings.
type AnswerKey struct {
	terms []Term
	index map[string]string
}

// NewAnswerKey builds an answer key. Terms must be non-empty and unique.
func NewAnswerKey(terms []Term) (AnswerKey, error) {
	if len(terms) == 0 {
		return AnswerKey{}, ErrEmptyKey
	}

	var errs []error
	index := make(map[string]string, len(terms))
	for _, t := range terms {
		if _, dup := index[t.Term]; dup {
			errs = append(errs, fmt.Errorf("duplicate term %q", t.Term))
			continue
		}
		index[t.Term] = t.Description
	}
	if len(errs) > 0 {
		return AnswerKey{}, errors.Join(errs...)
	}

	return AnswerKey{
		terms: slices.Clone(terms),
		index: index,
	}, nil
}

// Terms returns a copy of the key's terms in their original order.
func (k AnswerKey) Terms() []Term {
	return slices.Clone(k.terms)
}

// Len returns the number of terms.
func (k AnswerKey) Len() int {
	return len(k.terms)
}

// Lookup returns the correct description for term.
func (k AnswerKey) Lookup(term string) (string, bool) {
	d, ok := k.index[term]
	return d, ok
}

// Validate reports whether description is the correct pairing for term.
// Comparison is exact and case-sensitive; an unknown term is never correct.
func Validate(key AnswerKey, term, description string) bool {
	want, ok := key.Lookup(term)
	if !ok {
		return false
	}
	return want == description
}
