// Package templates owns the embedded generation templates and static file
// groups, and the render/copy boundary over them. Templates are addressed by
// id; the data handed to Render must already be escaped by the entity layer.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	forgeerrors "github.com/weblint/forge/internal/errors"
)

//go:embed files/*.tmpl
var templateFS embed.FS

//go:embed all:static
var staticFS embed.FS

// Static file group names. Common is copied for every package, community only
// for non-official ones.
const (
	StaticCommon    = "common"
	StaticCommunity = "community"
)

// funcs are the helpers available inside generation templates. jsonstr emits
// a quoted JSON string: backtick escaping only protects template-literal
// contexts, so text interpolated into a JSON document goes through the JSON
// encoder instead (with the backtick escaping undone first, as it is not a
// valid JSON escape).
var funcs = template.FuncMap{
	"jsonstr": func(s string) string {
		encoded, _ := json.Marshal(strings.ReplaceAll(s, "\\`", "`"))

		return string(encoded)
	},
}

// Render renders the template with the given id against data. A missing
// template id is a render error, not an I/O error: the set of ids is fixed at
// compile time, so reaching this failure means a planner bug.
func Render(id string, data any) (string, error) {
	raw, err := templateFS.ReadFile("files/" + id + ".tmpl")
	if err != nil {
		return "", forgeerrors.NewRenderError("TEMPLATE_MISSING", fmt.Sprintf("unknown template %q", id), err)
	}

	tmpl, err := template.New(id).Funcs(funcs).Parse(string(raw))
	if err != nil {
		return "", forgeerrors.NewRenderError("TEMPLATE_PARSE", fmt.Sprintf("template %q failed to parse", id), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", forgeerrors.NewRenderError("TEMPLATE_EXECUTE", fmt.Sprintf("template %q failed to render", id), err)
	}

	return buf.String(), nil
}

// CopyStatic copies the named static file group into dest, preserving the
// directory structure. Templated writes may later overwrite files the group
// put in place.
func CopyStatic(group, dest string) error {
	root := "static/" + group

	return fs.WalkDir(staticFS, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return forgeerrors.NewInternalError("STATIC_WALK", fmt.Sprintf("static group %q is unreadable", group), walkErr)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return forgeerrors.NewInternalError("STATIC_REL", "static path outside group root", err).WithPath(path)
		}

		target := filepath.Join(dest, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return forgeerrors.NewIOError("STATIC_MKDIR", "failed to create directory", err).WithPath(target)
			}

			return nil
		}

		data, err := staticFS.ReadFile(path)
		if err != nil {
			return forgeerrors.NewInternalError("STATIC_READ", "embedded static file is unreadable", err).WithPath(path)
		}

		if err := os.WriteFile(target, data, 0644); err != nil {
			return forgeerrors.NewIOError("STATIC_WRITE", "failed to write static file", err).WithPath(target)
		}

		return nil
	})
}
