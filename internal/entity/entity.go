// Package entity defines the immutable in-memory description of a package to
// generate, and the builder that turns one finished round of prompt answers
// into that description. Entities live only for the duration of a generation
// run; only their rendered projections persist on disk.
package entity

import (
	"path/filepath"

	"github.com/weblint/forge/internal/usecase"
)

// Kind is the artifact kind a package scaffolds.
type Kind string

const (
	KindRule   Kind = "rule"
	KindParser Kind = "parser"
)

// EventBinding pairs a literally-entered host event with the resource element
// it targets. Parser items subscribe through bindings rather than a use case.
type EventBinding struct {
	Event   string
	Element string
}

// Key is the uniqueness key for accumulated bindings: two bindings collide
// only when both event and element match.
func (b EventBinding) Key() string {
	return b.Event + "|" + b.Element
}

// Item describes one generated rule or parser-event binding within a package.
type Item struct {
	// Name is the display name exactly as entered.
	Name string
	// Slug is the normalized name used for file names.
	Slug string
	// Identifier is the exported class name in generated sources. For
	// multi-item packages it is prefixed with the package slug.
	Identifier string
	// Category files the item under a documentation category.
	Category usecase.Category
	// UseCase is UseCaseNone for parser items.
	UseCase usecase.UseCase
	// Events is the ordered list of host events the item subscribes to,
	// resolved from the use case registry for rules or copied from
	// Bindings for parsers.
	Events []string
	// Bindings holds the literal event/element pairs of a parser item.
	Bindings []EventBinding
	// Scope restricts where the generated rule may run.
	Scope usecase.Scope
	// Description is already backtick-escaped for template interpolation.
	Description string
	// ElementType is set only for DOM-use-case items.
	ElementType string
	// ParentSlug is the owning package's slug for multi-item packages,
	// empty for standalone items.
	ParentSlug string
}

// Package is the top-level generated artifact: shared metadata plus one or
// more items. It is built once from a completed prompt session and is
// immutable afterwards.
type Package struct {
	Name        string
	Slug        string
	Description string
	Kind        Kind
	Multi       bool
	Official    bool
	// PackageName is the published name: "@weblint/{kind}-{slug}" for
	// official packages, "weblint-{kind}-{slug}" for community ones.
	PackageName string
	// Directory is the package directory name under the destination root.
	Directory string
	// Destination is the absolute generation target.
	Destination string
	// Version is a point-in-time copy of the host application's declared
	// version; it is never re-resolved after building.
	Version string
	// Extends names the shared configuration a community package's local
	// config extends. Empty for official packages.
	Extends string
	Items   []Item
}

// Dest joins path elements onto the package destination.
func (p Package) Dest(elem ...string) string {
	return filepath.Join(append([]string{p.Destination}, elem...)...)
}
