package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "no-https", "no-https"},
		{"spaces become separators", "no https", "no-https"},
		{"mixed case is lowered", "No HTTPS", "no-https"},
		{"underscores and dots", "my_rule.name", "my-rule-name"},
		{"slashes", "axe/forms", "axe-forms"},
		{"repeated delimiters collapse", "no -- https", "no-https"},
		{"leading and trailing delimiters drop", "  no-https  ", "no-https"},
		{"empty input", "", ""},
		{"only delimiters", " -_. ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"No HTTPS", "my_rule.name", "a  b  c", "already-normal", ""}

	for _, input := range inputs {
		slug := Normalize(input)
		assert.Equal(t, slug, Normalize(slug), "normalize must be idempotent for %q", input)
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"no-https", "NoHttps"},
		{"No HTTPS", "NoHttps"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Pascal(tt.input), "Pascal(%q)", tt.input)
	}
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "noHttps", Camel("no-https"))
	assert.Equal(t, "", Camel(""))
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		prefix   string
		expected string
	}{
		{"standalone", "no-https", "", "NoHttps"},
		{"prefixed for multi packages", "no-https", "security-pack", "SecurityPackNoHttps"},
		{"prefix alone", "", "security-pack", "SecurityPack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Identifier(tt.slug, tt.prefix))
		})
	}
}
