package reply

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultTerminators is the Hindi-tuned set of sentence-final characters.
const DefaultTerminators = "।.?!"

// ErrIncomplete marks a reply that stopped mid-sentence, usually because the
// stream hit the token limit.
var ErrIncomplete = errors.New("reply ends without a sentence terminator")

// Validator checks that a finished reply ends on a sentence boundary.
type Validator struct {
	terminators string
}

// NewValidator builds a validator for the given terminator characters. An
// empty set falls back to DefaultTerminators.
func NewValidator(terminators string) *Validator {
	if strings.TrimSpace(terminators) == "" {
		terminators = DefaultTerminators
	}
	return &Validator{terminators: terminators}
}

// Validate returns ErrIncomplete when reply is non-empty and its last
// non-space rune is not a terminator. Empty replies pass.
func (v *Validator) Validate(reply string) error {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return nil
	}

	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if !strings.ContainsRune(v.terminators, last) {
		return ErrIncomplete
	}
	return nil
}
