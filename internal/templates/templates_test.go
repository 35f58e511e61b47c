package templates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblint/forge/internal/entity"
	forgeerrors "github.com/weblint/forge/internal/errors"
)

type renderData struct {
	Pkg  entity.Package
	Item *entity.Item

	TypesNodeVersion  string
	UtilsVersion      string
	TypeScriptVersion string
}

func sampleData() renderData {
	item := entity.Item{
		Name:        "No HTTPS",
		Slug:        "no-https",
		Identifier:  "NoHttps",
		Category:    "security",
		Events:      []string{"fetch::end::*"},
		Scope:       "any",
		Description: entity.EscapeDescription("require `https` everywhere"),
	}

	return renderData{
		Pkg: entity.Package{
			Name:        "No HTTPS",
			Slug:        "no-https",
			Description: "desc",
			Kind:        entity.KindRule,
			PackageName: "@weblint/rule-no-https",
			Version:     "2.5.0",
			Items:       []entity.Item{item},
		},
		Item:              &item,
		TypesNodeVersion:  "20.12.7",
		UtilsVersion:      "1.9.3",
		TypeScriptVersion: "5.4.5",
	}
}

func TestRenderRuleSource(t *testing.T) {
	out, err := Render("rule.ts", sampleData())
	require.NoError(t, err)

	assert.Contains(t, out, "export default class NoHttps implements Rule")
	assert.Contains(t, out, "context.on('fetch::end::*'")
	assert.Contains(t, out, "id: 'no-https'")
}

func TestRenderEscapedDescriptionSurvives(t *testing.T) {
	out, err := Render("rule.ts", sampleData())
	require.NoError(t, err)

	// The escaped backtick must appear verbatim so the surrounding
	// template literal in the generated TypeScript stays intact.
	assert.Contains(t, out, "require \\`https\\` everywhere")
	assert.NotContains(t, out, "require `https`")
}

func TestRenderPackageManifest(t *testing.T) {
	out, err := Render("package.json", sampleData())
	require.NoError(t, err)

	assert.Contains(t, out, `"name": "@weblint/rule-no-https"`)
	assert.Contains(t, out, `"@weblint/core": "^2.5.0"`)
	assert.Contains(t, out, `"typescript": "^5.4.5"`)
	assert.Contains(t, out, `"@weblint/utils": "^1.9.3"`)
}

func TestRenderPackageManifestIsValidJSON(t *testing.T) {
	data := sampleData()
	data.Pkg.Description = entity.EscapeDescription("says \"hi\" and `bye`")

	out, err := Render("package.json", data)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "says \"hi\" and `bye`", doc["description"])
}

func TestRenderLocalConfigIsValidJSON(t *testing.T) {
	data := sampleData()
	data.Pkg.Extends = "@weblint/config-recommended"

	out, err := Render("weblintrc", data)
	require.NoError(t, err)

	var doc struct {
		Extends []string          `json:"extends"`
		Rules   map[string]string `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"@weblint/config-recommended"}, doc.Extends)
	assert.Equal(t, "error", doc.Rules["no-https"])
}

func TestRenderIndexListsAllItems(t *testing.T) {
	data := sampleData()
	second := entity.Item{Slug: "other-rule", Identifier: "OtherRule"}
	data.Pkg.Items = append(data.Pkg.Items, second)

	out, err := Render("index.ts", data)
	require.NoError(t, err)

	assert.Contains(t, out, "import NoHttps from './no-https';")
	assert.Contains(t, out, "import OtherRule from './other-rule';")
	assert.Contains(t, out, "'no-https': NoHttps")
	assert.Contains(t, out, "'other-rule': OtherRule")
}

func TestRenderUnknownTemplateIsRenderError(t *testing.T) {
	_, err := Render("nonsense", sampleData())
	require.Error(t, err)

	var fe *forgeerrors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, forgeerrors.ErrorTypeRender, fe.Type)
}

func TestCopyStaticCommon(t *testing.T) {
	dest := t.TempDir()

	require.NoError(t, CopyStatic(StaticCommon, dest))

	assert.FileExists(t, filepath.Join(dest, ".gitignore"))
	assert.FileExists(t, filepath.Join(dest, ".editorconfig"))
	assert.NoFileExists(t, filepath.Join(dest, ".npmrc"))
}

func TestCopyStaticCommunity(t *testing.T) {
	dest := t.TempDir()

	require.NoError(t, CopyStatic(StaticCommunity, dest))

	assert.FileExists(t, filepath.Join(dest, ".npmrc"))
	assert.FileExists(t, filepath.Join(dest, ".github", "workflows", "ci.yml"))
}

func TestCopyStaticPreservesContent(t *testing.T) {
	dest := t.TempDir()

	require.NoError(t, CopyStatic(StaticCommon, dest))

	data, err := os.ReadFile(filepath.Join(dest, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "node_modules/")
}
