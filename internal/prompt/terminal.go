package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	forgeerrors "github.com/weblint/forge/internal/errors"
)

// TerminalAsker asks questions on an interactive terminal. Defaults are shown
// in brackets and taken on empty input; invalid answers are re-asked rather
// than surfaced as errors. An exhausted input stream is the one exception: a
// closed stdin cannot be re-asked, so Ask fails instead of looping.
type TerminalAsker struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalAsker creates an asker reading from in and writing prompts to out.
func NewTerminalAsker(in io.Reader, out io.Writer) *TerminalAsker {
	return &TerminalAsker{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask runs the question list in order, skipping questions whose When
// predicate rejects the answers collected so far.
func (t *TerminalAsker) Ask(questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))

	for _, q := range questions {
		if q.When != nil && !q.When(answers) {
			continue
		}

		def := ""
		if q.Default != nil {
			def = q.Default(answers)
		}

		switch q.Kind {
		case Confirm:
			answers[q.Key] = t.askBool(q.Text, strings.HasPrefix(strings.ToLower(def), "y"))
		case Select:
			answers[q.Key] = t.askChoice(q.Text, q.Options, def)
		case MultiSelect:
			answers[q.Key] = t.askMulti(q.Text, q.Options)
		default:
			value, err := t.askString(q.Text, def, q.Validate)
			if err != nil {
				return nil, err
			}
			answers[q.Key] = value
		}
	}

	return answers, nil
}

// readLine returns the next trimmed input line. The error is non-nil once
// the stream is exhausted and no further input will ever arrive.
func (t *TerminalAsker) readLine() (string, error) {
	input, err := t.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

func (t *TerminalAsker) askString(text, def string, validate func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(t.out, "%s [%s]: ", text, def)
		} else {
			fmt.Fprintf(t.out, "%s: ", text)
		}

		input, readErr := t.readLine()
		if input == "" {
			input = def
		}

		if validate != nil {
			if err := validate(input); err != nil {
				if readErr != nil {
					// The stream is closed; re-asking would spin on
					// the same failing answer forever.
					return "", forgeerrors.NewIOError("INPUT_CLOSED", "input ended before a valid answer", readErr)
				}

				fmt.Fprintf(t.out, "❌ %v\n", err)
				continue
			}
		}

		return input, nil
	}
}

func (t *TerminalAsker) askBool(text string, def bool) bool {
	defStr := "n"
	if def {
		defStr = "y"
	}

	fmt.Fprintf(t.out, "%s [%s]: ", text, defStr)

	line, _ := t.readLine()
	input := strings.ToLower(line)
	if input == "" {
		return def
	}

	return input == "y" || input == "yes" || input == "true"
}

func (t *TerminalAsker) askChoice(text string, choices []string, def string) string {
	if def == "" && len(choices) > 0 {
		def = choices[0]
	}

	for {
		fmt.Fprintf(t.out, "%s [%s] (options: %s): ", text, def, strings.Join(choices, ", "))

		// An empty line, including a closed stream, takes the default.
		input, _ := t.readLine()
		if input == "" {
			return def
		}

		for _, choice := range choices {
			if strings.EqualFold(input, choice) {
				return choice
			}
		}

		fmt.Fprintf(t.out, "❌ Invalid choice. Please select from: %s\n", strings.Join(choices, ", "))
	}
}

func (t *TerminalAsker) askMulti(text string, choices []string) []string {
	for {
		fmt.Fprintf(t.out, "%s (comma-separated, options: %s): ", text, strings.Join(choices, ", "))

		input, _ := t.readLine()
		if input == "" {
			return nil
		}

		var selected []string
		valid := true
		for _, part := range strings.Split(input, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			matched := ""
			for _, choice := range choices {
				if strings.EqualFold(part, choice) {
					matched = choice
					break
				}
			}

			if matched == "" {
				valid = false
				break
			}
			selected = append(selected, matched)
		}

		if valid {
			return selected
		}

		fmt.Fprintf(t.out, "❌ Invalid selection. Please select from: %s\n", strings.Join(choices, ", "))
	}
}
