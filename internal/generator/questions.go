package generator

import (
	"fmt"

	"github.com/weblint/forge/internal/entity"
	"github.com/weblint/forge/internal/prompt"
	"github.com/weblint/forge/internal/usecase"
)

// packageQuestions is the top-level prompt set. For single-rule packages the
// classification questions (category, use case, scope) are asked in the same
// round, gated on the multi answer; multi-rule packages ask them per item
// instead.
func (d *Driver) packageQuestions(kind entity.Kind, defaults Defaults) []prompt.Question {
	questions := []prompt.Question{
		{
			Key:      "name",
			Text:     fmt.Sprintf("What's the name of this new %s?", kind),
			Kind:     prompt.Input,
			Validate: prompt.NonEmpty("name"),
		},
		{
			Key:      "description",
			Text:     fmt.Sprintf("What's the description of this new %s?", kind),
			Kind:     prompt.Input,
			Validate: prompt.NonEmpty("description"),
		},
		{
			Key:     "official",
			Text:    "Is this an official (in-repo) package?",
			Kind:    prompt.Confirm,
			Default: prompt.BoolDefault(defaults.Official),
		},
	}

	if kind != entity.KindRule {
		return questions
	}

	singleRule := func(answers prompt.Answers) bool { return !answers.Bool("multi") }

	return append(questions,
		prompt.Question{
			Key:     "multi",
			Text:    "Will the package contain multiple rules?",
			Kind:    prompt.Confirm,
			Default: prompt.BoolDefault(defaults.Multi),
		},
		prompt.Question{
			Key:     "category",
			Text:    "Please select the category of this new rule",
			Kind:    prompt.Select,
			Options: d.registry.CategoryMenu(),
			When:    singleRule,
		},
		prompt.Question{
			Key:     "useCase",
			Text:    "Please select the category of use case",
			Kind:    prompt.Select,
			Options: d.registry.UseCaseMenu(),
			When:    singleRule,
		},
		prompt.Question{
			Key:     "elementType",
			Text:    "What DOM element does the rule need access to?",
			Kind:    prompt.Input,
			Default: prompt.StaticDefault(usecase.DefaultElementType),
			When: func(answers prompt.Answers) bool {
				return !answers.Bool("multi") && answers.String("useCase") == string(usecase.UseCaseDOM)
			},
		},
		prompt.Question{
			Key:     "scope",
			Text:    "Please select the scope of this new rule",
			Kind:    prompt.Select,
			Options: d.registry.ScopeMenu(),
			When:    singleRule,
		},
	)
}

// itemQuestions is one sub-rule round of a multi-rule package.
func (d *Driver) itemQuestions(round int) []prompt.Question {
	return []prompt.Question{
		{
			Key:      "name",
			Text:     fmt.Sprintf("What's the name of rule #%d?", round+1),
			Kind:     prompt.Input,
			Validate: prompt.NonEmpty("name"),
		},
		{
			Key:      "description",
			Text:     "What's the description of this rule?",
			Kind:     prompt.Input,
			Validate: prompt.NonEmpty("description"),
		},
		{
			Key:     "category",
			Text:    "Please select the category of this rule",
			Kind:    prompt.Select,
			Options: d.registry.CategoryMenu(),
		},
		{
			Key:     "useCase",
			Text:    "Please select the category of use case",
			Kind:    prompt.Select,
			Options: d.registry.UseCaseMenu(),
		},
		{
			Key:     "elementType",
			Text:    "What DOM element does the rule need access to?",
			Kind:    prompt.Input,
			Default: prompt.StaticDefault(usecase.DefaultElementType),
			When: func(answers prompt.Answers) bool {
				return answers.String("useCase") == string(usecase.UseCaseDOM)
			},
		},
		{
			Key:     "scope",
			Text:    "Please select the scope of this rule",
			Kind:    prompt.Select,
			Options: d.registry.ScopeMenu(),
		},
		{
			Key:  "again",
			Text: "Do you want to add another rule?",
			Kind: prompt.Confirm,
		},
	}
}
