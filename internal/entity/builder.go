package entity

import (
	"path/filepath"
	"strings"

	"github.com/weblint/forge/internal/naming"
	"github.com/weblint/forge/internal/prompt"
	"github.com/weblint/forge/internal/usecase"
)

// Builder turns finished prompt answers into immutable entities. It is a pure
// transform: all prompting has already happened by the time it runs.
type Builder struct {
	registry *usecase.Registry
}

// NewBuilder creates a builder over the given enumeration registry.
func NewBuilder(registry *usecase.Registry) *Builder {
	return &Builder{registry: registry}
}

// PackageMeta carries the package-level inputs that do not come from prompt
// answers: naming conventions, the host version to pin, and the generation
// root.
type PackageMeta struct {
	Kind Kind
	// HostVersion is copied verbatim into the package entity.
	HostVersion string
	// OfficialScope is the npm scope for official packages, e.g. "@weblint".
	OfficialScope string
	// CommunityPrefix is the name prefix for community packages, e.g. "weblint".
	CommunityPrefix string
	// Root is the directory packages are generated under, usually the
	// current working directory.
	Root string
}

// EscapeDescription backslash-escapes backticks so free-form user text can
// never terminate a template-literal delimiter in generated sources.
func EscapeDescription(description string) string {
	return strings.ReplaceAll(description, "`", "\\`")
}

// BuildItem builds one rule item from a finished answer round. parentSlug is
// the owning package's slug for multi-item packages and prefixes the derived
// identifier so identifiers stay unique within the package; it is empty for
// standalone items.
func (b *Builder) BuildItem(answers prompt.Answers, parentSlug string) Item {
	slug := naming.Normalize(answers.String("name"))

	item := Item{
		Name:        answers.String("name"),
		Slug:        slug,
		Identifier:  naming.Identifier(slug, parentSlug),
		Category:    b.registry.ParseCategory(answers.String("category")),
		UseCase:     b.registry.ParseUseCase(answers.String("useCase")),
		Scope:       b.registry.ParseScope(answers.String("scope")),
		Description: EscapeDescription(answers.String("description")),
		ParentSlug:  parentSlug,
	}

	if item.UseCase == usecase.UseCaseDOM {
		item.ElementType = answers.String("elementType")
		if item.ElementType == "" {
			item.ElementType = usecase.DefaultElementType
		}
	}

	// A literally-entered event list wins over registry resolution.
	if events := answers.List("events"); len(events) > 0 {
		item.Events = events
	} else if item.UseCase != usecase.UseCaseNone {
		item.Events = b.registry.EventsFor(item.UseCase, item.ElementType)
	}

	return item
}

// BuildParserItem builds the single item of a parser package from the package
// answers plus the accumulated event bindings. The bindings are assumed
// already deduplicated by the collector.
func (b *Builder) BuildParserItem(answers prompt.Answers, bindings []EventBinding) Item {
	slug := naming.Normalize(answers.String("name"))

	events := make([]string, len(bindings))
	for i, binding := range bindings {
		events[i] = binding.Event
	}

	return Item{
		Name:        answers.String("name"),
		Slug:        slug,
		Identifier:  naming.Identifier(slug, ""),
		Category:    usecase.CategoryOther,
		UseCase:     usecase.UseCaseNone,
		Events:      events,
		Bindings:    bindings,
		Scope:       b.registry.ParseScope(answers.String("scope")),
		Description: EscapeDescription(answers.String("description")),
	}
}

// BuildPackage builds the package entity wrapping items. The package name and
// directory depend on the official flag: official packages are published
// under the host scope and generated into "{kind}-{slug}", community packages
// carry the community prefix in both name and directory.
func (b *Builder) BuildPackage(answers prompt.Answers, meta PackageMeta, items []Item) Package {
	slug := naming.Normalize(answers.String("name"))
	official := answers.Bool("official")

	pkg := Package{
		Name:        answers.String("name"),
		Slug:        slug,
		Description: EscapeDescription(answers.String("description")),
		Kind:        meta.Kind,
		Multi:       answers.Bool("multi"),
		Official:    official,
		Version:     meta.HostVersion,
		Extends:     answers.String("extends"),
		Items:       items,
	}

	base := string(meta.Kind) + "-" + slug
	if official {
		pkg.PackageName = meta.OfficialScope + "/" + base
		pkg.Directory = base
	} else {
		pkg.PackageName = meta.CommunityPrefix + "-" + base
		pkg.Directory = meta.CommunityPrefix + "-" + base
	}

	pkg.Destination = filepath.Join(meta.Root, pkg.Directory)

	return pkg
}
