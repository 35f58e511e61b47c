package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/weblint/forge/internal/errors"
)

func ask(t *testing.T, input string, questions []Question) (Answers, string) {
	t.Helper()

	var out bytes.Buffer
	asker := NewTerminalAsker(strings.NewReader(input), &out)

	answers, err := asker.Ask(questions)
	require.NoError(t, err)

	return answers, out.String()
}

func TestAskStringTakesDefaultOnEmptyInput(t *testing.T) {
	answers, out := ask(t, "\n", []Question{{
		Key:     "name",
		Text:    "Name",
		Kind:    Input,
		Default: StaticDefault("fallback"),
	}})

	assert.Equal(t, "fallback", answers.String("name"))
	assert.Contains(t, out, "[fallback]")
}

func TestAskStringReasksOnValidationFailure(t *testing.T) {
	answers, out := ask(t, "\n\nreal-answer\n", []Question{{
		Key:      "name",
		Text:     "Name",
		Kind:     Input,
		Validate: NonEmpty("name"),
	}})

	assert.Equal(t, "real-answer", answers.String("name"))
	assert.Contains(t, out, "may not be blank")
}

func TestAskFailsWhenInputEndsBeforeValidAnswer(t *testing.T) {
	var out bytes.Buffer
	asker := NewTerminalAsker(strings.NewReader(""), &out)

	_, err := asker.Ask([]Question{{
		Key:      "name",
		Text:     "Name",
		Kind:     Input,
		Validate: NonEmpty("name"),
	}})

	require.Error(t, err)

	var fe *forgeerrors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forgeerrors.ErrorTypeIO, fe.Type)

	// The exhausted reader must not be re-asked in a loop.
	assert.Equal(t, 1, strings.Count(out.String(), "Name: "))
}

func TestAskTakesDefaultWhenInputEnds(t *testing.T) {
	var out bytes.Buffer
	asker := NewTerminalAsker(strings.NewReader(""), &out)

	answers, err := asker.Ask([]Question{{
		Key:      "name",
		Text:     "Name",
		Kind:     Input,
		Default:  StaticDefault("fallback"),
		Validate: NonEmpty("name"),
	}})

	require.NoError(t, err)
	assert.Equal(t, "fallback", answers.String("name"))
}

func TestAskConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      func(Answers) string
		expected bool
	}{
		{"yes", "y\n", nil, true},
		{"no", "n\n", nil, false},
		{"empty takes true default", "\n", BoolDefault(true), true},
		{"empty takes false default", "\n", BoolDefault(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, _ := ask(t, tt.input, []Question{{
				Key:     "flag",
				Text:    "Sure?",
				Kind:    Confirm,
				Default: tt.def,
			}})

			assert.Equal(t, tt.expected, answers.Bool("flag"))
		})
	}
}

func TestAskChoiceReasksOnInvalidInput(t *testing.T) {
	answers, out := ask(t, "bogus\nSite\n", []Question{{
		Key:     "scope",
		Text:    "Scope",
		Kind:    Select,
		Options: []string{"any", "site", "local"},
	}})

	assert.Equal(t, "site", answers.String("scope"), "matching is case-insensitive and returns the canonical option")
	assert.Contains(t, out, "Invalid choice")
}

func TestAskChoiceEmptyInputTakesFirstOption(t *testing.T) {
	answers, _ := ask(t, "\n", []Question{{
		Key:     "scope",
		Text:    "Scope",
		Kind:    Select,
		Options: []string{"any", "site", "local"},
	}})

	assert.Equal(t, "any", answers.String("scope"))
}

func TestAskMultiSelect(t *testing.T) {
	answers, _ := ask(t, "a, c\n", []Question{{
		Key:     "events",
		Text:    "Events",
		Kind:    MultiSelect,
		Options: []string{"a", "b", "c"},
	}})

	assert.Equal(t, []string{"a", "c"}, answers.List("events"))
}

func TestWhenSkipsQuestions(t *testing.T) {
	answers, out := ask(t, "n\n", []Question{
		{Key: "multi", Text: "Multiple?", Kind: Confirm},
		{
			Key:  "hidden",
			Text: "Should never be asked",
			Kind: Input,
			When: func(a Answers) bool { return a.Bool("multi") },
		},
	})

	assert.False(t, answers.Bool("multi"))
	assert.False(t, answers.Has("hidden"))
	assert.NotContains(t, out, "Should never be asked")
}

func TestAnswersTypedGetters(t *testing.T) {
	answers := Answers{"s": "text", "b": true, "l": []string{"x"}}

	assert.Equal(t, "text", answers.String("s"))
	assert.Equal(t, "", answers.String("missing"))
	assert.True(t, answers.Bool("b"))
	assert.False(t, answers.Bool("s"), "type mismatch yields the zero value")
	assert.Equal(t, []string{"x"}, answers.List("l"))
	assert.Nil(t, answers.List("missing"))
}
