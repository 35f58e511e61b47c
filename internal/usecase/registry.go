// Package usecase holds the closed enumerations that classify generated
// artifacts (categories, use cases, scopes) and the registry that maps a use
// case to the host lifecycle events a generated rule subscribes to.
package usecase

import (
	"fmt"
	"strings"
)

// UseCase classifies what part of the page-audit lifecycle a rule inspects.
type UseCase string

const (
	// UseCaseNone marks items with no use case, e.g. parser event bindings.
	UseCaseNone        UseCase = ""
	UseCaseDOM         UseCase = "dom"
	UseCaseRequest     UseCase = "request"
	UseCaseThirdParty  UseCase = "thirdPartyService"
	UseCaseJSInjection UseCase = "jsInjection"
)

// Category is the documentation category a rule is filed under.
type Category string

const (
	CategoryAccessibility Category = "accessibility"
	CategoryCompatibility Category = "compatibility"
	CategoryPerformance   Category = "performance"
	CategoryPitfalls      Category = "pitfalls"
	CategoryPWA           Category = "pwa"
	CategorySecurity      Category = "security"
	// CategoryOther is a valid machine value but is never offered in the
	// user-facing menu.
	CategoryOther Category = "other"
)

// Scope describes where a generated rule may run.
type Scope string

const (
	ScopeAny   Scope = "any"
	ScopeSite  Scope = "site"
	ScopeLocal Scope = "local"
)

// DefaultElementType is used for DOM rules when the operator does not name a
// specific element to traverse.
const DefaultElementType = "div"

// Registry is the immutable lookup table from use case to subscribed events.
// It is constructed once at process start and never mutated afterwards.
type Registry struct {
	events     map[UseCase][]string
	useCases   []UseCase
	categories []Category
	scopes     []Scope
}

// New builds the registry with the full closed enumeration sets.
func New() *Registry {
	return &Registry{
		events: map[UseCase][]string{
			UseCaseDOM:         {"element::%s"},
			UseCaseRequest:     {"fetch::end::*"},
			UseCaseThirdParty:  {"fetch::start", "fetch::end::*"},
			UseCaseJSInjection: {"scan::end"},
		},
		useCases: []UseCase{UseCaseDOM, UseCaseRequest, UseCaseThirdParty, UseCaseJSInjection},
		categories: []Category{
			CategoryAccessibility,
			CategoryCompatibility,
			CategoryPerformance,
			CategoryPitfalls,
			CategoryPWA,
			CategorySecurity,
			CategoryOther,
		},
		scopes: []Scope{ScopeAny, ScopeSite, ScopeLocal},
	}
}

// EventsFor resolves the ordered event list a rule with the given use case
// subscribes to. DOM rules bind to a single element type; elementType is
// ignored for every other use case. An unknown tag is a programming error:
// the tag set is closed and validated at prompt time, so this panics rather
// than returning an error the caller cannot act on.
func (r *Registry) EventsFor(tag UseCase, elementType string) []string {
	patterns, ok := r.events[tag]
	if !ok {
		panic(fmt.Sprintf("usecase: unknown use case %q", tag))
	}

	events := make([]string, len(patterns))
	for i, pattern := range patterns {
		if strings.Contains(pattern, "%s") {
			if elementType == "" {
				elementType = DefaultElementType
			}
			events[i] = fmt.Sprintf(pattern, elementType)
		} else {
			events[i] = pattern
		}
	}

	return events
}

// UseCaseMenu returns the user-facing use case choices.
func (r *Registry) UseCaseMenu() []string {
	menu := make([]string, len(r.useCases))
	for i, uc := range r.useCases {
		menu[i] = string(uc)
	}

	return menu
}

// CategoryMenu returns the user-facing category choices. CategoryOther is a
// machine-only value and is excluded.
func (r *Registry) CategoryMenu() []string {
	menu := make([]string, 0, len(r.categories)-1)
	for _, c := range r.categories {
		if c == CategoryOther {
			continue
		}
		menu = append(menu, string(c))
	}

	return menu
}

// ScopeMenu returns the user-facing scope choices.
func (r *Registry) ScopeMenu() []string {
	menu := make([]string, len(r.scopes))
	for i, s := range r.scopes {
		menu[i] = string(s)
	}

	return menu
}

// ParseCategory maps a raw answer onto the closed category set, defaulting to
// CategoryOther for anything unrecognized.
func (r *Registry) ParseCategory(raw string) Category {
	for _, c := range r.categories {
		if strings.EqualFold(raw, string(c)) {
			return c
		}
	}

	return CategoryOther
}

// ParseUseCase maps a raw answer onto the closed use case set. Unrecognized
// values map to UseCaseNone.
func (r *Registry) ParseUseCase(raw string) UseCase {
	for _, uc := range r.useCases {
		if strings.EqualFold(raw, string(uc)) {
			return uc
		}
	}

	return UseCaseNone
}

// ParseScope maps a raw answer onto the closed scope set, defaulting to
// ScopeAny.
func (r *Registry) ParseScope(raw string) Scope {
	for _, s := range r.scopes {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}

	return ScopeAny
}
