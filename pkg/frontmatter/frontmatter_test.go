package frontmatter

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantFrontmatter bool
		wantMatter      string
		wantBody        string
	}{
		{
			name:            "frontmatter and body",
			input:           "---\nname: my-skill\ndescription: Does things\n---\n\n# Title\n\nBody text.\n",
			wantFrontmatter: true,
			wantMatter:      "name: my-skill\ndescription: Does things",
			wantBody:        "# Title\n\nBody text.",
		},
		{
			name:            "no frontmatter",
			input:           "# Title\n\nBody only.\n",
			wantFrontmatter: false,
			wantBody:        "# Title\n\nBody only.",
		},
		{
			name:            "frontmatter not at start",
			input:           "\n---\nname: x\n---\nbody",
			wantFrontmatter: false,
			wantBody:        "---\nname: x\n---\nbody",
		},
		{
			name:            "unterminated frontmatter",
			input:           "---\nname: x\nbody without closing",
			wantFrontmatter: false,
			wantBody:        "---\nname: x\nbody without closing",
		},
		{
			name:            "lazy match stops at first closing delimiter",
			input:           "---\nname: a\n---\nfirst\n---\nsecond",
			wantFrontmatter: true,
			wantMatter:      "name: a",
			wantBody:        "first\n---\nsecond",
		},
		{
			name:            "CRLF line endings",
			input:           "---\r\nname: crlf\r\n---\r\nbody\r\n",
			wantFrontmatter: true,
			wantMatter:      "name: crlf",
			wantBody:        "body",
		},
		{
			name:            "empty body",
			input:           "---\nname: x\n---\n",
			wantFrontmatter: true,
			wantMatter:      "name: x",
			wantBody:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Split(tt.input)
			if doc.HasFrontmatter != tt.wantFrontmatter {
				t.Fatalf("HasFrontmatter = %v, want %v", doc.HasFrontmatter, tt.wantFrontmatter)
			}
			if doc.Frontmatter != tt.wantMatter {
				t.Errorf("Frontmatter = %q, want %q", doc.Frontmatter, tt.wantMatter)
			}
			if doc.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", doc.Body, tt.wantBody)
			}
		})
	}
}

func TestDocument_Field(t *testing.T) {
	doc := Split(`---
name:   spaced-value  
description: Use this when testing: colons are kept
license:
nested:
  name: inner
metadata_name: ignored
---
body`)

	tests := []struct {
		key       string
		wantValue string
		wantOK    bool
	}{
		{"name", "spaced-value", true},
		{"description", "Use this when testing: colons are kept", true},
		{"license", "", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := doc.Field(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Field(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if got != tt.wantValue {
				t.Errorf("Field(%q) = %q, want %q", tt.key, got, tt.wantValue)
			}
		})
	}
}

func TestDocument_Field_IndentedKey(t *testing.T) {
	doc := Split("---\nmetadata:\n  name: inner\n\tlicense:\tMIT\n---\nbody")

	if got, ok := doc.Field("name"); !ok || got != "inner" {
		t.Errorf("Field(name) = %q, %v; want %q, true", got, ok, "inner")
	}
	if got, ok := doc.Field("license"); !ok || got != "MIT" {
		t.Errorf("Field(license) = %q, %v; want %q, true", got, ok, "MIT")
	}
	if _, ok := doc.Field("meta"); ok {
		t.Error("Field(meta) should not match a longer key")
	}
}

func TestDocument_Field_NoFrontmatter(t *testing.T) {
	doc := Split("name: not-frontmatter\n\nbody")
	if _, ok := doc.Field("name"); ok {
		t.Error("Field() should not find keys outside a frontmatter block")
	}
}

func TestDocument_Field_FirstMatchWins(t *testing.T) {
	doc := Split("---\nname: first\nname: second\n---\n")
	got, ok := doc.Field("name")
	if !ok || got != "first" {
		t.Errorf("Field(name) = %q, %v; want %q, true", got, ok, "first")
	}
}

func TestFormat(t *testing.T) {
	type meta struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		License     string `yaml:"license,omitempty"`
	}

	data, err := Format(meta{Name: "my-skill", Description: "Use this when formatting"}, "# Body")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := string(data)
	want := "---\nname: my-skill\ndescription: Use this when formatting\n---\n\n# Body\n"
	if got != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", got, want)
	}

	doc := Split(got)
	if !doc.HasFrontmatter {
		t.Fatal("formatted output should split back into frontmatter")
	}
	if name, _ := doc.Field("name"); name != "my-skill" {
		t.Errorf("round-tripped name = %q, want my-skill", name)
	}
	if _, ok := doc.Field("license"); ok {
		t.Error("omitted license should not be present")
	}
}

func TestFormat_EmptyBody(t *testing.T) {
	data, err := Format(map[string]string{"name": "x"}, "")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "---\n") {
		t.Errorf("Format() with empty body should end with delimiter, got %q", data)
	}
}
