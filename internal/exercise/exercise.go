package exercise

import "strings"

// Exercise is a write-it-yourself check embedded in a tutorial.
type Exercise struct {
	Title        string   `yaml:"title" json:"title"`
	Prompt       string   `yaml:"prompt" json:"prompt"`
	Requirements []string `yaml:"requirements" json:"requirements"`
	Reference    string   `yaml:"reference" json:"reference"`
	Hint         string   `yaml:"hint" json:"hint"`
	Success      string   `yaml:"success" json:"success"`
}

// Feedback is the result of evaluating a submission.
type Feedback struct {
	Correct bool
	Message string
}

// Check reports whether candidate equals reference once leading and
// trailing whitespace is removed from both. No parsing is attempted.
func Check(candidate, reference string) bool {
	return strings.TrimSpace(candidate) == strings.TrimSpace(reference)
}

// Evaluate checks text against the reference and picks the message to show.
func (e Exercise) Evaluate(text string) Feedback {
	if Check(text, e.Reference) {
		return Feedback{Correct: true, Message: e.Success}
	}
	return Feedback{Message: e.Hint}
}
