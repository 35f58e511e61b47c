// Package manifest expands a finished package entity into the ordered set of
// file-write operations that realize it on disk. The planner only decides
// what to write where; rendering and writing happen in the generation driver.
package manifest

import (
	"github.com/weblint/forge/internal/entity"
	"github.com/weblint/forge/internal/hostmeta"
	"github.com/weblint/forge/internal/templates"
)

// TemplateData is the data object handed to the template boundary for one
// entry. Item is nil for package-level entries.
type TemplateData struct {
	Pkg  entity.Package
	Item *entity.Item

	// Dependency versions copied from the host manifest at plan time.
	TypesNodeVersion  string
	UtilsVersion      string
	TypeScriptVersion string
}

// Entry is one planned (template, target path, data) unit of output.
type Entry struct {
	Template string
	Path     string
	Data     TemplateData
}

// Group is a set of entries with no path dependency on each other. The
// driver creates Dirs first, then renders and writes the entries
// concurrently; groups themselves run in order.
type Group struct {
	Dirs    []string
	Entries []Entry
}

// StaticCopy names a pre-built static file group to copy into a destination
// before any templated file is written.
type StaticCopy struct {
	Group string
	Dest  string
}

// Manifest is the full ordered plan for one package.
type Manifest struct {
	Static []StaticCopy
	Groups []Group
}

// Entries flattens all groups, preserving order. Mostly a test convenience.
func (m Manifest) Entries() []Entry {
	var all []Entry
	for _, g := range m.Groups {
		all = append(all, g.Entries...)
	}

	return all
}

// Planner expands package entities into manifests.
type Planner struct {
	meta *hostmeta.Manifest
}

// NewPlanner creates a planner copying dependency versions out of the host
// manifest.
func NewPlanner(meta *hostmeta.Manifest) *Planner {
	return &Planner{meta: meta}
}

// Plan produces the manifest for pkg.
//
// Every package gets the four common stubs (package.json, tsconfig.json,
// README.md, src/index.ts); community packages add a local .weblintrc; every
// item adds a source and a test stub; multi-item packages add a per-item doc
// stub. Static groups are copied wholesale first so templated writes may
// overwrite them.
func (p *Planner) Plan(pkg entity.Package) Manifest {
	data := TemplateData{
		Pkg:               pkg,
		TypesNodeVersion:  p.meta.DependencyVersion("@types/node"),
		UtilsVersion:      p.meta.DependencyVersion("@weblint/utils"),
		TypeScriptVersion: p.meta.DependencyVersion("typescript"),
	}

	static := []StaticCopy{{Group: templates.StaticCommon, Dest: pkg.Destination}}
	if !pkg.Official {
		static = append(static, StaticCopy{Group: templates.StaticCommunity, Dest: pkg.Destination})
	}

	root := Group{
		Dirs: []string{pkg.Destination},
		Entries: []Entry{
			{Template: "package.json", Path: pkg.Dest("package.json"), Data: data},
			{Template: "tsconfig.json", Path: pkg.Dest("tsconfig.json"), Data: data},
			{Template: "readme.md", Path: pkg.Dest("README.md"), Data: data},
		},
	}
	if !pkg.Official {
		root.Entries = append(root.Entries, Entry{Template: "weblintrc", Path: pkg.Dest(".weblintrc"), Data: data})
	}

	sub := Group{
		Dirs: []string{pkg.Dest("src"), pkg.Dest("tests")},
		Entries: []Entry{
			{Template: "index.ts", Path: pkg.Dest("src", "index.ts"), Data: data},
		},
	}
	if pkg.Multi {
		sub.Dirs = append(sub.Dirs, pkg.Dest("docs"))
	}

	source, test := "rule.ts", "rule-test.ts"
	if pkg.Kind == entity.KindParser {
		source, test = "parser.ts", "parser-test.ts"
	}

	for i := range pkg.Items {
		item := &pkg.Items[i]
		itemData := data
		itemData.Item = item

		sub.Entries = append(sub.Entries,
			Entry{Template: source, Path: pkg.Dest("src", item.Slug+".ts"), Data: itemData},
			Entry{Template: test, Path: pkg.Dest("tests", item.Slug+".ts"), Data: itemData},
		)

		if pkg.Multi {
			sub.Entries = append(sub.Entries, Entry{Template: "doc.md", Path: pkg.Dest("docs", item.Slug+".md"), Data: itemData})
		}
	}

	return Manifest{
		Static: static,
		Groups: []Group{root, sub},
	}
}
