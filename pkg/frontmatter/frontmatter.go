package frontmatter

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// blockRegex matches a frontmatter block anchored at the start of the
// document. The content between the delimiters is matched lazily so the
// first closing "---" wins.
var blockRegex = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)

// Document is a skill file split into its frontmatter and body regions.
type Document struct {
	// Raw is the full document text with line endings normalized to LF.
	Raw string
	// Frontmatter is the text between the delimiters. Empty when
	// HasFrontmatter is false.
	Frontmatter string
	// HasFrontmatter reports whether a leading delimited block was found.
	HasFrontmatter bool
	// Body is the text after the frontmatter block, whitespace-trimmed.
	Body string
}

// Split separates content into frontmatter and body.
// No YAML is parsed; the frontmatter is kept as raw text for line-oriented
// field lookup with [Document.Field].
//
// CRLF line endings are converted to LF first, so files saved on Windows
// are split the same way as their LF counterparts.
func Split(content string) *Document {
	raw := strings.ReplaceAll(content, "\r\n", "\n")
	doc := &Document{Raw: raw}

	loc := blockRegex.FindStringSubmatchIndex(raw)
	if loc == nil {
		doc.Body = strings.TrimSpace(raw)
		return doc
	}

	doc.HasFrontmatter = true
	doc.Frontmatter = raw[loc[2]:loc[3]]
	doc.Body = strings.TrimSpace(raw[loc[1]:])
	return doc
}

// Field returns the trimmed value of the first "key:" line in the
// frontmatter. The key may be indented. The second return value reports
// whether such a line exists; a present key may have an empty value.
func (d *Document) Field(key string) (string, bool) {
	if !d.HasFrontmatter {
		return "", false
	}
	m := fieldRegex(key).FindStringSubmatch(d.Frontmatter)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// fieldRegex builds the line-anchored pattern for key.
func fieldRegex(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `:(.*)$`)
}

// Format formats content with YAML frontmatter.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
