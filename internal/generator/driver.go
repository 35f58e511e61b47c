// Package generator orchestrates a full scaffolding run: prompt for package
// and item answers, build the entity graph, plan the file manifest, then
// render and write everything.
//
// The run is a straight-line state machine: collecting package info →
// collecting items → building entities → planning → rendering and writing →
// reporting. Once prompting has produced a committed package entity the run
// proceeds to completion or hard failure; there is no cancellation and no
// cleanup of already-written files.
package generator

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/weblint/forge/internal/config"
	"github.com/weblint/forge/internal/entity"
	forgeerrors "github.com/weblint/forge/internal/errors"
	"github.com/weblint/forge/internal/hostmeta"
	"github.com/weblint/forge/internal/manifest"
	"github.com/weblint/forge/internal/naming"
	"github.com/weblint/forge/internal/prompt"
	"github.com/weblint/forge/internal/templates"
	"github.com/weblint/forge/internal/usecase"
)

// RenderFunc is the template boundary: given a template id and a data object
// it returns rendered text.
type RenderFunc func(id string, data any) (string, error)

// Driver runs generation sessions.
type Driver struct {
	asker    prompt.Asker
	registry *usecase.Registry
	meta     *hostmeta.Manifest
	cfg      *config.Config
	builder  *entity.Builder
	planner  *manifest.Planner
	render   RenderFunc
	out      io.Writer
}

// New creates a driver. out receives progress reporting.
func New(asker prompt.Asker, registry *usecase.Registry, meta *hostmeta.Manifest, cfg *config.Config, out io.Writer) *Driver {
	return &Driver{
		asker:    asker,
		registry: registry,
		meta:     meta,
		cfg:      cfg,
		builder:  entity.NewBuilder(registry),
		planner:  manifest.NewPlanner(meta),
		render:   templates.Render,
		out:      out,
	}
}

// Defaults seeds prompt defaults from command-line flags. The operator still
// confirms interactively; flags only move the default answer.
type Defaults struct {
	Multi    bool
	Official bool
}

// Run drives one generation session for the given artifact kind.
//
// The boolean result is true only when every planned file was written. A
// false result with a resource-unavailable error (see errors.
// IsResourceUnavailable) is the soft outcome: the run aborted cleanly before
// touching the filesystem, e.g. because a community package had no shared
// configuration to extend. Render and I/O failures return a non-nil error
// after the offending file has been reported; files already written stay in
// place.
func (d *Driver) Run(kind entity.Kind, defaults Defaults) (bool, error) {
	pkgAnswers, err := d.asker.Ask(d.packageQuestions(kind, defaults))
	if err != nil {
		return false, err
	}

	if !pkgAnswers.Bool("official") {
		// Community packages extend a shared configuration. With none
		// declared by the host there is no package to resolve: soft
		// abort, nothing written.
		if len(d.meta.Configurations) == 0 {
			fmt.Fprintln(d.out, "⚠️  No shared configurations are available to extend. Nothing to generate.")
			return false, forgeerrors.NewResourceError("NO_CONFIGURATIONS", "no shared configurations available to extend")
		}

		extAnswers, err := d.asker.Ask([]prompt.Question{{
			Key:     "extends",
			Text:    "Which shared configuration should the package extend?",
			Kind:    prompt.Select,
			Options: d.meta.Configurations,
		}})
		if err != nil {
			return false, err
		}
		pkgAnswers["extends"] = extAnswers.String("extends")
	}

	items, err := d.collectItems(kind, pkgAnswers)
	if err != nil {
		return false, err
	}

	pkg := d.builder.BuildPackage(pkgAnswers, entity.PackageMeta{
		Kind:            kind,
		HostVersion:     d.meta.Version,
		OfficialScope:   d.cfg.OfficialScope,
		CommunityPrefix: d.cfg.CommunityPrefix,
		Root:            d.root(),
	}, items)

	plan := d.planner.Plan(pkg)

	if err := d.execute(plan); err != nil {
		return false, err
	}

	fmt.Fprintf(d.out, "✅ Generated %s in %s\n", pkg.PackageName, pkg.Destination)

	return true, nil
}

func (d *Driver) root() string {
	if d.cfg.OutputRoot != "" {
		return d.cfg.OutputRoot
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return cwd
}

// collectItems resolves the item list for the package: a repeat loop of
// sub-rule rounds for multi-rule packages, a repeat loop of event bindings
// for parsers, or a single item built from the package answers themselves.
func (d *Driver) collectItems(kind entity.Kind, pkgAnswers prompt.Answers) ([]entity.Item, error) {
	switch {
	case kind == entity.KindParser:
		bindings, err := prompt.Collect(d.bindingRound, entity.EventBinding.Key)
		if err != nil {
			return nil, err
		}

		return []entity.Item{d.builder.BuildParserItem(pkgAnswers, bindings)}, nil

	case pkgAnswers.Bool("multi"):
		parentSlug := naming.Normalize(pkgAnswers.String("name"))

		return prompt.Collect(func(round int) (entity.Item, bool, error) {
			answers, err := d.asker.Ask(d.itemQuestions(round))
			if err != nil {
				return entity.Item{}, false, err
			}

			return d.builder.BuildItem(answers, parentSlug), answers.Bool("again"), nil
		}, func(item entity.Item) string { return item.Slug })

	default:
		return []entity.Item{d.builder.BuildItem(pkgAnswers, "")}, nil
	}
}

func (d *Driver) bindingRound(round int) (entity.EventBinding, bool, error) {
	answers, err := d.asker.Ask([]prompt.Question{
		{
			Key:      "event",
			Text:     fmt.Sprintf("Event to subscribe to (#%d)", round+1),
			Kind:     prompt.Input,
			Validate: prompt.NonEmpty("event"),
		},
		{
			Key:  "element",
			Text: "Element the event applies to (empty for the whole resource)",
			Kind: prompt.Input,
		},
		{
			Key:  "again",
			Text: "Subscribe to another event?",
			Kind: prompt.Confirm,
		},
	})
	if err != nil {
		return entity.EventBinding{}, false, err
	}

	binding := entity.EventBinding{
		Event:   answers.String("event"),
		Element: answers.String("element"),
	}

	return binding, answers.Bool("again"), nil
}

// execute realizes the manifest: static groups first, then each group in
// order with its directories created before its entries are written.
func (d *Driver) execute(m manifest.Manifest) error {
	for _, static := range m.Static {
		if err := templates.CopyStatic(static.Group, static.Dest); err != nil {
			fmt.Fprintf(d.out, "❌ Failed to copy static files (%s)\n", static.Group)
			return err
		}
	}

	for _, group := range m.Groups {
		for _, dir := range group.Dirs {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return forgeerrors.NewIOError("MKDIR", "failed to create directory", err).WithPath(dir)
			}
		}

		if err := d.writeGroup(group); err != nil {
			return err
		}
	}

	return nil
}

// writeGroup renders and writes a group's entries concurrently. Entries in
// one group never share a target path, so no locking is needed; the first
// failure wins and aborts the run once the group has drained.
func (d *Driver) writeGroup(group manifest.Group) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(group.Entries))

	for _, entry := range group.Entries {
		wg.Add(1)
		go func(entry manifest.Entry) {
			defer wg.Done()

			content, err := d.render(entry.Template, entry.Data)
			if err != nil {
				errs <- fmt.Errorf("rendering %s: %w", entry.Path, err)
				return
			}

			if err := os.WriteFile(entry.Path, []byte(content), 0644); err != nil {
				errs <- forgeerrors.NewIOError("WRITE_FILE", "failed to write file", err).WithPath(entry.Path)
			}
		}(entry)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			fmt.Fprintf(d.out, "❌ Generation failed: %v\n", err)
			return err
		}
	}

	for _, entry := range group.Entries {
		fmt.Fprintf(d.out, "✅ Generated %s\n", entry.Path)
	}

	return nil
}

