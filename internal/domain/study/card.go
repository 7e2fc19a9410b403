package study

import (
	"fmt"
	"strings"
)

// Card is a single flashcard as seen by the scheduler.
// Two cards with the same Key are treated as the same card.
type Card struct {
	Key       string `json:"key"`
	Prompt    string `json:"prompt"`
	Auxiliary string `json:"auxiliary,omitempty"`
	Answer    string `json:"answer"`
}

// Outcome is the learner's self-reported recall result for a card.
type Outcome string

// Valid outcomes.
const (
	OutcomeStruggled Outcome = "struggled"
	OutcomeEasy      Outcome = "easy"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	return o == OutcomeStruggled || o == OutcomeEasy
}

// ParseOutcome converts a case-insensitive string into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
	return o, nil
}
