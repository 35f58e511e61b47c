// Package prompt defines the question/answer boundary between the generation
// core and the interactive terminal. The core describes what to ask as an
// ordered list of Question specs; an Asker turns them into an Answers map.
// The core never inspects how the asking happens, which keeps the generation
// pipeline testable with a scripted asker.
package prompt

import (
	"fmt"
	"strings"

	forgeerrors "github.com/weblint/forge/internal/errors"
)

// QuestionKind distinguishes how a question is asked and what answer type it
// produces.
type QuestionKind int

const (
	// Input is a free-text question producing a string answer.
	Input QuestionKind = iota
	// Confirm is a yes/no question producing a bool answer.
	Confirm
	// Select is a single-choice question producing a string answer.
	Select
	// MultiSelect is a multi-choice question producing a []string answer.
	MultiSelect
)

// Answers maps question keys to their collected answers. Values are string,
// bool, or []string depending on the question kind.
type Answers map[string]any

// String returns the answer for key as a string, or "" when absent.
func (a Answers) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}

	return ""
}

// Bool returns the answer for key as a bool, or false when absent.
func (a Answers) Bool(key string) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}

	return false
}

// List returns the answer for key as a string slice, or nil when absent.
func (a Answers) List(key string) []string {
	if v, ok := a[key].([]string); ok {
		return v
	}

	return nil
}

// Has reports whether key was answered at all.
func (a Answers) Has(key string) bool {
	_, ok := a[key]

	return ok
}

// Question is one prompt specification. Default, When, and Validate are
// optional; When and Default receive the answers accumulated so far in the
// same round, so later questions can depend on earlier ones.
type Question struct {
	Key      string
	Text     string
	Kind     QuestionKind
	Options  []string
	Default  func(Answers) string
	When     func(Answers) bool
	Validate func(string) error
}

// Asker runs an ordered question list and returns the collected answers.
type Asker interface {
	Ask(questions []Question) (Answers, error)
}

// NonEmpty returns a validator rejecting blank free-text answers. Every
// display-name question uses it, which is what guarantees downstream slugs
// are never empty.
func NonEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return forgeerrors.NewValidationError("BLANK_ANSWER", fmt.Sprintf("%s may not be blank", field))
		}

		return nil
	}
}

// StaticDefault wraps a fixed default value into a Default function.
func StaticDefault(value string) func(Answers) string {
	return func(Answers) string { return value }
}

// BoolDefault wraps a fixed bool default into a Default function.
func BoolDefault(value bool) func(Answers) string {
	if value {
		return StaticDefault("y")
	}

	return StaticDefault("n")
}
